// Package ports defines the interfaces between the prompt pipeline and the
// infrastructure it queries. Adapters implement them; services consume them.
package ports

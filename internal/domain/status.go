// Package domain contains the prompt model: porcelain status lines, change
// categories and the prompt template. It has no dependencies on git or the
// filesystem.
package domain

import (
	"strings"
)

// Category is a kind of uncommitted change shown in the prompt.
type Category int

const (
	CategoryModified Category = iota
	CategoryAdded
	CategoryDeleted
	CategoryUntracked
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryModified, CategoryAdded, CategoryDeleted, CategoryUntracked}
}

// String returns the config key for the category.
func (c Category) String() string {
	switch c {
	case CategoryModified:
		return "modified"
	case CategoryAdded:
		return "added"
	case CategoryDeleted:
		return "deleted"
	case CategoryUntracked:
		return "untracked"
	default:
		return "unknown"
	}
}

// StatusLine is a single entry of `git status --porcelain` output.
// A zero code means the slot was missing from the line.
type StatusLine struct {
	Staged   byte
	Unstaged byte
	Path     string
}

// ParseStatusLine reads the two status code slots and the path of a line.
func ParseStatusLine(line string) StatusLine {
	var sl StatusLine
	if len(line) > 0 {
		sl.Staged = line[0]
	}
	if len(line) > 1 {
		sl.Unstaged = line[1]
	}
	if len(line) > 3 {
		sl.Path = line[3:]
	}
	return sl
}

// ParseStatus splits raw porcelain output into status lines.
// Empty output yields no lines.
func ParseStatus(raw string) []StatusLine {
	if raw == "" {
		return nil
	}
	rows := strings.Split(raw, "\n")
	lines := make([]StatusLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, ParseStatusLine(strings.TrimSuffix(row, "\r")))
	}
	return lines
}

// Codes flattens the status codes of all lines into one string, dropping
// paths and missing slots.
func Codes(lines []StatusLine) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Staged != 0 {
			b.WriteByte(l.Staged)
		}
		if l.Unstaged != 0 {
			b.WriteByte(l.Unstaged)
		}
	}
	return b.String()
}

// CategoryRule maps a category to the porcelain codes that indicate it and
// the symbol printed for it.
type CategoryRule struct {
	Category Category
	Codes    string
	Symbol   string
}

// CategoryTable is the ordered rule set used by Summarize.
type CategoryTable []CategoryRule

// DefaultCategoryTable returns the built-in code and symbol mapping.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		{Category: CategoryModified, Codes: "MCRU", Symbol: "*"},
		{Category: CategoryAdded, Codes: "A", Symbol: "+"},
		{Category: CategoryDeleted, Codes: "D", Symbol: "-"},
		{Category: CategoryUntracked, Codes: "?", Symbol: "?"},
	}
}

// Rule returns the rule for the given category.
func (t CategoryTable) Rule(c Category) (CategoryRule, bool) {
	for _, r := range t {
		if r.Category == c {
			return r, true
		}
	}
	return CategoryRule{}, false
}

// Present reports which categories appear in the given lines.
func (t CategoryTable) Present(lines []StatusLine) map[Category]bool {
	codes := Codes(lines)
	present := make(map[Category]bool, len(t))
	for _, r := range t {
		if r.Codes != "" && strings.ContainsAny(codes, r.Codes) {
			present[r.Category] = true
		}
	}
	return present
}

// Count returns, per category, how many lines carry one of its codes.
// A line can count toward several categories, such as "AD".
func (t CategoryTable) Count(lines []StatusLine) map[Category]int {
	counts := make(map[Category]int, len(t))
	for _, l := range lines {
		codes := Codes([]StatusLine{l})
		for _, r := range t {
			if r.Codes != "" && strings.ContainsAny(codes, r.Codes) {
				counts[r.Category]++
			}
		}
	}
	return counts
}

// Summarize renders one symbol per category present in lines. Symbols are
// always emitted in Categories() order, whatever order the lines are in.
func Summarize(lines []StatusLine, table CategoryTable) string {
	if len(lines) == 0 {
		return ""
	}

	present := table.Present(lines)

	var b strings.Builder
	for _, c := range Categories() {
		if !present[c] {
			continue
		}
		if r, ok := table.Rule(c); ok {
			b.WriteString(r.Symbol)
		}
	}
	return b.String()
}

package tui

import (
	"fmt"
	"io"

	"github.com/xvierd/gitprompt/internal/config"
	"github.com/xvierd/gitprompt/internal/domain"
)

// SampleFolder is the folder used for the sample prompt in ShowConfig.
const SampleFolder = "repo/src"

// ShowConfig prints cfg and the prompt it renders for a tree with every
// kind of change.
func ShowConfig(w io.Writer, path string, cfg *config.Config, styles Styles) {
	row := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", styles.Dim.Render(fmt.Sprintf("%-16s", label)), styles.Value.Render(value))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", styles.Title.Render("gitprompt configuration"))
	fmt.Fprintf(w, "  %s\n\n", styles.Dim.Render(path))

	debugLog := cfg.DebugLog
	if debugLog == "" {
		debugLog = "off"
	}
	pc := cfg.ToPromptConfig()

	row("backend", cfg.Backend)
	row("debug log", debugLog)
	row("shell", orDefault(cfg.Prompt.Shell, string(domain.ShellBash)))
	row("template", fmt.Sprintf("%q", pc.Template))
	row("folder default", fmt.Sprintf("%q", pc.FolderDefault))
	row("folder color", fmt.Sprintf("%q", pc.FolderColor))
	row("status color", fmt.Sprintf("%q", pc.StatusColor))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", styles.Title.Render("Categories"))
	for _, cat := range domain.Categories() {
		r, _ := pc.Categories.Rule(cat)
		row(cat.String(), fmt.Sprintf("%s  codes %q", r.Symbol, r.Codes))
	}

	folder := SampleFolder
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", styles.Title.Render("Sample prompt"))
	fmt.Fprintf(w, "  %s\n\n", domain.Render(pc, &folder, AllSymbols(pc.Categories)))
}

// AllSymbols returns every category symbol in display order.
func AllSymbols(table domain.CategoryTable) string {
	var s string
	for _, cat := range domain.Categories() {
		if r, ok := table.Rule(cat); ok {
			s += r.Symbol
		}
	}
	return s
}

package tui

import (
	"fmt"
	"io"

	"github.com/xvierd/gitprompt/internal/domain"
)

// ShowStatus prints the repository state behind a prompt render.
func ShowStatus(w io.Writer, state *domain.PromptState, cfg domain.PromptConfig, styles Styles) {
	if !state.Inside {
		fmt.Fprintln(w, styles.Title.Render("Not inside a git working tree."))
		fmt.Fprintf(w, "   Folder: %s\n", styles.Value.Render(cfg.FolderDefault))
		return
	}

	fmt.Fprintln(w, styles.Title.Render("Git working tree"))
	fmt.Fprintf(w, "   Folder: %s\n", styles.Value.Render(state.FolderOrDefault(cfg.FolderDefault)))
	if state.GitDir != "" {
		fmt.Fprintf(w, "   Git dir: %s\n", styles.Dim.Render(state.GitDir))
	}

	if len(state.Lines) == 0 {
		fmt.Fprintf(w, "   %s\n", styles.Dim.Render("Clean"))
		return
	}

	counts := cfg.Categories.Count(state.Lines)
	fmt.Fprintln(w)
	for _, cat := range domain.Categories() {
		r, _ := cfg.Categories.Rule(cat)
		line := fmt.Sprintf("   %s %-10s %d", r.Symbol, cat.String(), counts[cat])
		if counts[cat] == 0 {
			fmt.Fprintln(w, styles.Dim.Render(line))
			continue
		}
		fmt.Fprintln(w, styles.Value.Render(line))
	}
	fmt.Fprintf(w, "\n   Summary: %s\n", styles.Value.Render(state.Status))
}

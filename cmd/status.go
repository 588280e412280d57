package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitprompt/internal/adapters/tui"
	"github.com/xvierd/gitprompt/internal/domain"
)

var jsonOutput bool

// newStatusCmd explains what the prompt would show for the current directory
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what the prompt is made of",
		Long:  `Display the repository state behind the prompt: the resolved folder, each change category and the rendered prompt.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := promptSvc.Evaluate(context.Background(), workDir)
			table := promptSvc.Config().Categories

			if jsonOutput {
				return outputStatusJSON(cmd.OutOrStdout(), state, table)
			}

			tui.ShowStatus(cmd.OutOrStdout(), state, promptSvc.Config(), tui.NewStyles(&appConfig.Theme))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	return cmd
}

// outputStatusJSON outputs the prompt state in JSON format
func outputStatusJSON(w io.Writer, state *domain.PromptState, table domain.CategoryTable) error {
	counts := table.Count(state.Lines)
	categories := make([]map[string]interface{}, 0, len(table))
	for _, cat := range domain.Categories() {
		r, _ := table.Rule(cat)
		categories = append(categories, map[string]interface{}{
			"name":   cat.String(),
			"symbol": r.Symbol,
			"count":  counts[cat],
		})
	}

	result := map[string]interface{}{
		"dir":         state.Dir,
		"inside_tree": state.Inside,
		"git_dir":     state.GitDir,
		"folder":      nil,
		"status":      state.Status,
		"categories":  categories,
		"prompt":      state.Prompt,
	}
	if state.Folder != nil {
		result["folder"] = *state.Folder
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

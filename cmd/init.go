package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitprompt/internal/domain"
)

// executablePath locates the running binary for the shell snippet.
var executablePath = os.Executable

// newInitCmd prints the shell integration snippet
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [bash|zsh]",
		Short: "Print shell integration",
		Long: `Print a snippet that refreshes the prompt from gitprompt before every prompt.

  bash: add eval "$(gitprompt init bash)" to ~/.bashrc
  zsh:  add eval "$(gitprompt init zsh)" to ~/.zshrc`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ShellBash), string(domain.ShellZsh)},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := string(domain.ShellBash)
			if len(args) == 1 {
				name = args[0]
			}
			shell, err := domain.ParseShell(name)
			if err != nil {
				return err
			}

			switch shell {
			case domain.ShellZsh:
				fmt.Fprint(cmd.OutOrStdout(), zshSnippet(binaryPath()))
			default:
				fmt.Fprint(cmd.OutOrStdout(), bashSnippet(binaryPath()))
			}
			return nil
		},
	}
}

// binaryPath returns the absolute path of the running binary, or its bare
// name when that cannot be determined.
func binaryPath() string {
	path, err := executablePath()
	if err != nil || path == "" {
		return "gitprompt"
	}
	return path
}

// shellQuote wraps s in single quotes for sh-compatible shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// bashSnippet returns the PROMPT_COMMAND hook that refreshes PS1.
func bashSnippet(bin string) string {
	return fmt.Sprintf(`__gitprompt_ps1() {
    PS1="$(%s --shell bash 2>/dev/null)"
}
case ";${PROMPT_COMMAND};" in
    *";__gitprompt_ps1;"*) ;;
    *) PROMPT_COMMAND="__gitprompt_ps1${PROMPT_COMMAND:+;${PROMPT_COMMAND}}" ;;
esac
`, shellQuote(bin))
}

// zshSnippet returns the precmd hook that refreshes PROMPT.
func zshSnippet(bin string) string {
	return fmt.Sprintf(`__gitprompt_precmd() {
    PROMPT="$(%s --shell zsh 2>/dev/null)"
}
typeset -ag precmd_functions
if (( ! ${precmd_functions[(I)__gitprompt_precmd]} )); then
    precmd_functions+=(__gitprompt_precmd)
fi
`, shellQuote(bin))
}

// Package cmd provides the CLI commands for gitprompt.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitprompt/internal/adapters/git"
	"github.com/xvierd/gitprompt/internal/config"
	"github.com/xvierd/gitprompt/internal/domain"
	"github.com/xvierd/gitprompt/internal/log"
	"github.com/xvierd/gitprompt/internal/ports"
	"github.com/xvierd/gitprompt/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath   string
	workDir      string
	backendFlag  string
	debugLogPath string
	shellFlag    string

	// Prompt flags
	folderColorFlag string
	statusColorFlag string
	minimal         bool

	// Global dependencies
	appConfig *config.Config
	prober    ports.GitProber
	promptSvc *services.PromptService
)

// rootCmd is the command tree run by Execute.
var rootCmd = newRootCmd()

// newRootCmd builds the command tree and binds its flags. Binding resets
// every flag variable to its default.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitprompt",
		Short: "gitprompt - a git-aware shell prompt",
		Long: `gitprompt prints a shell prompt showing the current directory,
relative to the repository when inside a git working tree, and a compact
summary of uncommitted changes:

  *  modified, renamed, copied or unmerged
  +  added
  -  deleted
  ?  untracked

Run "gitprompt init bash" or "gitprompt init zsh" for the shell integration snippet.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeServices()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return cleanupServices()
		},
		RunE: runPrompt,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: $XDG_CONFIG_HOME/gitprompt/config.toml)")
	cmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "Directory to render the prompt for (default: current directory)")
	cmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Git backend: cli or go-git (overrides config)")
	cmd.PersistentFlags().StringVar(&debugLogPath, "debug-log", "", "Append debug traces to this file (overrides config)")
	cmd.PersistentFlags().StringVar(&shellFlag, "shell", "", "Prompt dialect: bash or zsh (overrides config)")
	cmd.PersistentFlags().StringVar(&folderColorFlag, "folder-color", "", "Folder color name or escape (overrides config)")
	cmd.PersistentFlags().StringVar(&statusColorFlag, "status-color", "", "Status color name or escape (overrides config)")
	cmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "Print only the folder and status segment")

	cmd.Version = Version
	cmd.SetVersionTemplate("gitprompt\nVersion: {{.Version}}\n")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initializeServices loads configuration and wires the prompt pipeline.
// Every failure falls back to defaults so a prompt is always printed.
func initializeServices() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("config: %v; using defaults", err)
		cfg = config.DefaultConfig()
	}
	applyPromptFlags(cfg)
	appConfig = cfg

	logPath := appConfig.DebugLog
	if debugLogPath != "" {
		logPath = debugLogPath
	}
	// The log package only discards once told to; without a path it would
	// keep buffering for the life of the process.
	_ = log.SetFile(logPath)

	backend := appConfig.Backend
	if backendFlag != "" {
		backend = backendFlag
	}
	prober = newProber(backend)

	pc := appConfig.ToPromptConfig()
	if minimal {
		pc = pc.Minimal()
	}
	promptSvc = services.NewPromptService(prober, pc)
}

// applyPromptFlags overrides the prompt settings of cfg with any flags
// given. Switching shells drops the template and any raw escapes of the
// configured dialect; named colors carry over. An invalid shell is logged
// and ignored.
func applyPromptFlags(cfg *config.Config) {
	if shellFlag != "" {
		sh, err := domain.ParseShell(shellFlag)
		current, _ := domain.ParseShell(cfg.Prompt.Shell)
		switch {
		case err != nil:
			log.Printf("--shell: %v; using %s", err, current)
		case sh != current:
			cfg.Prompt = config.PromptConfig{
				Shell:       string(sh),
				FolderColor: namedColor(cfg.Prompt.FolderColor),
				StatusColor: namedColor(cfg.Prompt.StatusColor),
			}
		}
	}
	if folderColorFlag != "" {
		cfg.Prompt.FolderColor = folderColorFlag
	}
	if statusColorFlag != "" {
		cfg.Prompt.StatusColor = statusColorFlag
	}
}

// namedColor returns color if it is a color name, else "".
func namedColor(color string) string {
	if domain.IsColorName(color) {
		return color
	}
	return ""
}

// newProber returns the GitProber for backend, defaulting to the git CLI.
func newProber(backend string) ports.GitProber {
	switch backend {
	case config.BackendGoGit:
		return git.NewGoGitProber()
	case config.BackendCLI, "":
		return git.NewCLIProber()
	default:
		log.Printf("unknown backend %q; using %s", backend, config.BackendCLI)
		return git.NewCLIProber()
	}
}

// cleanupServices closes all resources.
func cleanupServices() error {
	_ = log.Close()
	return nil
}

// runPrompt writes the rendered prompt to stdout without a trailing newline.
func runPrompt(cmd *cobra.Command, args []string) error {
	prompt := promptSvc.Render(context.Background(), workDir)
	if _, err := fmt.Fprint(cmd.OutOrStdout(), prompt); err != nil {
		log.Printf("write prompt: %v", err)
	}
	return nil
}

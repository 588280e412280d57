package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Default prompt settings. The escapes are bash PS1 sequences: \[ \] mark
// non-printing runs, \u is the user name, \w the abbreviated cwd.
const (
	DefaultTemplate          = `\[\033[m\]\u:__folder __status\[\033[m\]\$ `
	DefaultFolderPlaceholder = "__folder"
	DefaultStatusPlaceholder = "__status"
	DefaultFolderDefault     = `\w`
	DefaultFolderColor       = `\[\033[36;1m\]`
	DefaultStatusColor       = `\[\033[33;1m\]`
)

// ErrInvalidPrompt is returned by PromptConfig.Validate.
var ErrInvalidPrompt = errors.New("invalid prompt config")

// PromptConfig holds everything the summarizer and renderer need. Values
// are treated as immutable once built.
type PromptConfig struct {
	Template          string
	FolderPlaceholder string
	StatusPlaceholder string
	FolderDefault     string
	FolderColor       string
	StatusColor       string
	Categories        CategoryTable
}

// DefaultPromptConfig returns the built-in prompt.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		Template:          DefaultTemplate,
		FolderPlaceholder: DefaultFolderPlaceholder,
		StatusPlaceholder: DefaultStatusPlaceholder,
		FolderDefault:     DefaultFolderDefault,
		FolderColor:       DefaultFolderColor,
		StatusColor:       DefaultStatusColor,
		Categories:        DefaultCategoryTable(),
	}
}

// Validate checks that the template carries both placeholders and that
// every category has a single-character symbol.
func (c PromptConfig) Validate() error {
	if c.FolderPlaceholder == "" || !strings.Contains(c.Template, c.FolderPlaceholder) {
		return fmt.Errorf("%w: template is missing folder placeholder %q", ErrInvalidPrompt, c.FolderPlaceholder)
	}
	if c.StatusPlaceholder == "" || !strings.Contains(c.Template, c.StatusPlaceholder) {
		return fmt.Errorf("%w: template is missing status placeholder %q", ErrInvalidPrompt, c.StatusPlaceholder)
	}
	for _, cat := range Categories() {
		r, ok := c.Categories.Rule(cat)
		if !ok {
			return fmt.Errorf("%w: no rule for category %s", ErrInvalidPrompt, cat)
		}
		if utf8.RuneCountInString(r.Symbol) != 1 {
			return fmt.Errorf("%w: symbol for %s must be one character, got %q", ErrInvalidPrompt, cat, r.Symbol)
		}
	}
	return nil
}

// Render substitutes the folder and status into the template. A nil folder
// renders FolderDefault. No newline is appended.
func Render(cfg PromptConfig, folder *string, status string) string {
	dir := cfg.FolderDefault
	if folder != nil {
		dir = *folder
	}
	r := strings.NewReplacer(
		cfg.FolderPlaceholder, cfg.FolderColor+dir,
		cfg.StatusPlaceholder, cfg.StatusColor+status,
	)
	return r.Replace(cfg.Template)
}

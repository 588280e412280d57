package domain

import (
	"fmt"
	"strings"
)

// Shell selects the prompt escape dialect.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
)

// Zsh prompt settings. %n is the user name, %~ the abbreviated cwd and
// %B/%b toggle bold around the folder.
const (
	ZshTemplate      = `%f%n:%B__folder%b __status%f$ `
	ZshFolderDefault = `%~`
	ZshFolderColor   = `%F{blue}`
	ZshStatusColor   = `%F{yellow}`
)

// Shells returns the supported shells.
func Shells() []Shell {
	return []Shell{ShellBash, ShellZsh}
}

// ParseShell validates a shell name. Empty means bash.
func ParseShell(name string) (Shell, error) {
	switch Shell(strings.ToLower(name)) {
	case ShellBash, "":
		return ShellBash, nil
	case ShellZsh:
		return ShellZsh, nil
	default:
		return "", fmt.Errorf("%w: unsupported shell %q", ErrInvalidPrompt, name)
	}
}

// PresetPromptConfig returns the built-in prompt for sh.
func PresetPromptConfig(sh Shell) PromptConfig {
	cfg := DefaultPromptConfig()
	if sh == ShellZsh {
		cfg.Template = ZshTemplate
		cfg.FolderDefault = ZshFolderDefault
		cfg.FolderColor = ZshFolderColor
		cfg.StatusColor = ZshStatusColor
	}
	return cfg
}

// colorNames is indexed by ANSI color number.
var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ColorNames returns the named colors accepted by ColorEscape.
func ColorNames() []string {
	return append([]string(nil), colorNames...)
}

// IsColorName reports whether color is one of ColorNames.
func IsColorName(color string) bool {
	for _, name := range colorNames {
		if strings.EqualFold(color, name) {
			return true
		}
	}
	return false
}

// ColorEscape translates a named color into the escape for sh. Bash colors
// are bold, matching the built-in bash prompt. Anything that is not a
// color name is returned as is, so raw escapes keep working.
func ColorEscape(sh Shell, color string) string {
	for i, name := range colorNames {
		if !strings.EqualFold(color, name) {
			continue
		}
		if sh == ShellZsh {
			return "%F{" + name + "}"
		}
		return fmt.Sprintf(`\[\033[%d;1m\]`, 30+i)
	}
	return color
}

// Minimal returns a copy of c that renders only the colored folder and
// status, without the surrounding prompt.
func (c PromptConfig) Minimal() PromptConfig {
	c.Template = c.FolderPlaceholder + " " + c.StatusPlaceholder
	return c
}

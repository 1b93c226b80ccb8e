package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, e.g. in tests or when
// input is piped in but prompts are still wanted
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive removes any override set with ForceSetIsInteractive
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if formulas are typed by a user at a terminal,
// false when input is piped or redirected
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

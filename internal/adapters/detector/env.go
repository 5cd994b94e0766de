// Package detector inspects the environment to choose how build output is rendered.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsCI reports whether output should be formatted for a log collector.
// It checks the CI environment variable and whether stderr is a TTY.
func IsCI() bool {
	return detect(os.Getenv, term.IsTerminal(int(os.Stderr.Fd())))
}

// Resolve applies an explicit --ci flag to auto-detection.
// set reports whether the user passed the flag at all.
func Resolve(flag, set bool) bool {
	if set {
		return flag
	}
	return IsCI()
}

func detect(getenv func(string) string, isTTY bool) bool {
	ci := getenv("CI")
	isCI := ci == "true" || ci == "1"
	return isCI || !isTTY
}

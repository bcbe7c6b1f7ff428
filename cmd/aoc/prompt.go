package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
)

var (
	askOneFunc = survey.AskOne
)

// isInteractive is a variable to allow mocking in tests
var isInteractive = func() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// confirm asks a yes/no question. Without a terminal the default is used.
func confirm(message string, def bool) (bool, error) {
	if !isInteractive() {
		return def, nil
	}
	answer := def
	if err := askOneFunc(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

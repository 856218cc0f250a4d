package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/khanhnv2901/arch-health/internal/checker"
	"github.com/khanhnv2901/arch-health/internal/elfscan"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
	colorDim     = color.New(color.Faint).SprintFunc()
)

// stateColors maps run, check and probe states to their terminal color.
var stateColors = map[string]func(...interface{}) string{
	"healthy":                         colorSuccess,
	string(checker.StatusPass):        colorSuccess,
	string(elfscan.StatusClean):       colorSuccess,
	"issues":                          colorWarn,
	string(checker.StatusSkipped):     colorWarn,
	string(elfscan.StatusMissing):     colorWarn,
	string(checker.StatusError):       colorError,
	string(elfscan.StatusProbeFailed): colorError,
}

// colorState colors a state name; unknown states are returned unchanged.
func colorState(state string) string {
	if paint, ok := stateColors[strings.ToLower(state)]; ok {
		return paint(state)
	}
	return state
}

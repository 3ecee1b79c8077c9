package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green line between blocks of session output.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// Money colours a formatted amount by the sign of its value.
func Money(formatted string, negative bool) string {
	if negative {
		return pterm.Red(formatted)
	}
	return pterm.Green(formatted)
}

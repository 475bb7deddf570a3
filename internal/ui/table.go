package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes a boxed table to writer. The first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	if len(data) == 0 {
		return
	}

	str, err := pterm.DefaultTable.WithBoxed().
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.Bold)).
		WithData(data).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

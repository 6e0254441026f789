package commands

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/fdmota/breeze.js/errors"
)

// ReportError prints a command failure followed by any hints attached to it
func ReportError(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err.Error())
	if hints := errors.FlattenHints(err); hints != "" {
		pterm.Info.WithWriter(w).Println(hints)
	}
}

package io

import (
	"fmt"
	"io"
)

// Console writes each printed value as a decimal number on its own line.
type Console struct {
	Output io.Writer // Destination of the printed lines.
	Lines  int       // Lines printed since the last rewind.
}

var _ Output = (*Console)(nil)

func (con *Console) Rewind() {
	con.Lines = 0
}

func (con *Console) Print(value uint8) (err error) {
	if con.Output == nil {
		err = ErrConsoleDetached
		return
	}

	_, err = fmt.Fprintf(con.Output, "%d\n", value)
	if err != nil {
		return
	}

	con.Lines++

	return
}

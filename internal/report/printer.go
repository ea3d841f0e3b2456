package report

import (
	"bufio"
	"io"

	"github.com/nikmy/freeslots/internal/slots"
	"github.com/nikmy/freeslots/pkg/errors"
)

const NoSlots = "No common slots found"

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printer writes one slot per line, or NoSlots when there is nothing to show.
type Printer struct {
	w io.Writer
}

func (p *Printer) Report(found []slots.Interval) error {
	// bufio.Writer keeps the first write error and Flush returns it.
	buf := bufio.NewWriter(p.w)

	if len(found) == 0 {
		_, _ = buf.WriteString(NoSlots + "\n")
	}

	for _, slot := range found {
		_, _ = buf.WriteString(slot.String() + "\n")
	}

	return errors.WrapFail(buf.Flush(), "write report")
}

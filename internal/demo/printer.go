package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgutz/ansi"
)

const (
	styleBanner  = "cyan+b"
	styleCaught  = "yellow"
	styleHeading = "green+b"
)

// printer writes transcript lines and keeps the first write error; later
// writes become no-ops.
type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) line(format string, args ...any) {
	p.styled("", format, args...)
}

func (p *printer) styled(style, format string, args ...any) {
	if p.err != nil {
		return
	}

	s := fmt.Sprintf(format, args...)
	if p.color && style != "" {
		s = ansi.Color(s, style)
	}

	_, p.err = io.WriteString(p.w, s+"\n")
}

// formatFloat renders v in its shortest round-trip form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatInts renders xs as "[1, 4, 9]".
func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

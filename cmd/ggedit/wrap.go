package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/ggedit/text"
)

const defaultColumns = 80

func runWrap(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("wrap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		width   = fs.Int("width", 0, "maximum line width in columns (0: terminal width)")
		align   = fs.String("align", "left", "line alignment: left, center or right")
		verbose = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(stderr, *verbose)

	alignment, err := text.ParseAlignment(*align)
	if err != nil {
		return err
	}
	columns := *width
	if columns <= 0 {
		columns = terminalColumns(os.Stdout)
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	s := strings.TrimSuffix(strings.ReplaceAll(string(input), "\r\n", "\n"), "\n")

	return writeWrapped(stdout, s, alignment, columns)
}

// writeWrapped lays s out in monospace cells and prints each visual line,
// padded with spaces to honor the alignment. Trailing spaces are trimmed
// and the padding is measured against the trimmed line.
func writeWrapped(w io.Writer, s string, alignment text.Alignment, columns int) error {
	metrics := text.NewCellMetrics()
	l := text.NewLayout(s, metrics, alignment, float64(columns))

	bw := bufio.NewWriter(w)
	for _, line := range l.TextLines() {
		trimmed := strings.TrimRight(line, " \t")
		fmt.Fprintf(bw, "%s%s\n", strings.Repeat(" ", linePad(l.Width(), text.MeasureString(trimmed, metrics), alignment)), trimmed)
	}
	return bw.Flush()
}

// linePad returns the leading cells that align a line of width w within
// a block of width total.
func linePad(total, w float64, alignment text.Alignment) int {
	switch alignment {
	case text.AlignRight:
		return max(int(total-w), 0)
	case text.AlignCenter:
		return max(int(total*0.5-w*0.5), 0)
	}
	return 0
}

// terminalColumns returns the width of f when it is a terminal.
func terminalColumns(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultColumns
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultColumns
	}
	return w
}

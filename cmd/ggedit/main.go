// Command ggedit lays out and edits text from the command line.
//
// Usage:
//
//	ggedit wrap [-width n] [-align left|center|right] < input.txt
//	ggedit replay [-config ggedit.yaml] [-png out.png] script.txt
//
// wrap breaks standard input into lines no wider than the terminal (or
// -width columns) using monospace cell widths. replay drives a text field
// with an input script and prints the resulting value.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/ggedit"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches to a subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "wrap":
		err = runWrap(args[1:], stdin, stdout, stderr)
	case "replay":
		err = runReplay(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "ggedit: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "ggedit %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ggedit <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  wrap     wrap standard input to the terminal width")
	fmt.Fprintln(w, "  replay   replay an input script against a text field")
}

// setupLogging routes library logs to stderr when verbose is set.
func setupLogging(stderr io.Writer, verbose bool) {
	if !verbose {
		ggedit.SetLogger(nil)
		return
	}
	ggedit.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

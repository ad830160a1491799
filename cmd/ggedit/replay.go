package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/internal/config"
	"github.com/gogpu/ggedit/internal/script"
	"github.com/gogpu/ggedit/render"
)

func runReplay(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		pngPath    = fs.String("png", "", "render the final field to this PNG file")
		verbose    = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(stderr, *verbose)

	if fs.NArg() != 1 {
		return errors.New("expected exactly one script file")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	fonts, err := cfg.Fonts()
	if err != nil {
		return err
	}
	defer func() { _ = fonts.Close() }()

	if *pngPath != "" && fonts.Face == nil {
		return fmt.Errorf("-png needs font or bitmap metrics, config uses %q", cfg.Metrics)
	}

	opts, err := cfg.FieldOptions()
	if err != nil {
		return err
	}
	clipboard := &edit.MemoryClipboard{}
	field := edit.New(fonts.Metrics, append(opts, edit.WithClipboard(clipboard))...)

	commits := 0
	field.OnValueCommitted.Add(func(f *edit.TextField) {
		commits++
		ggedit.Logger().Info("value committed", "value", f.Value())
	})
	field.OnClipboardError.Add(func(err error) {
		fmt.Fprintf(stderr, "clipboard: %v\n", err)
	})

	s, err := loadScript(fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := script.NewPlayer(field, clipboard).Run(ctx, s); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "value: %q\n", field.Value())
	fmt.Fprintf(stdout, "selection: [%d, %d)\n", field.SelectionStart(), field.SelectionEnd())
	fmt.Fprintf(stdout, "commits: %d\n", commits)

	if *pngPath != "" {
		target := render.RenderField(field, fonts.Face, render.DefaultFieldStyle())
		if err := target.SavePNG(*pngPath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved %s (%dx%d)\n", *pngPath, target.Width(), target.Height())
	}
	return nil
}

func loadScript(path string) (*script.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return script.Parse(path, f)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/kraitsura/responsive/pkg/breakpoint"
	"github.com/kraitsura/responsive/pkg/config"
	"github.com/kraitsura/responsive/pkg/export"
	"github.com/kraitsura/responsive/pkg/ui"
	"github.com/kraitsura/responsive/pkg/watcher"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to rv.yaml (default: ./rv.yaml)")
	width := flag.Int("width", 0, "Start with a simulated width")
	height := flag.Int("height", 0, "Start with a simulated height")
	report := flag.Bool("report", false, "Print a text report for the current size and exit")
	svgPath := flag.String("svg", "", "Write an SVG breakpoint ruler to the given path and exit")
	pngPath := flag.String("png", "", "Write a PNG breakpoint ruler to the given path and exit")
	guide := flag.Bool("guide", false, "Show the usage guide")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Println("rv version " + version)
		return
	}

	if *guide {
		out, err := glamour.Render(guideText, "dark")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering guide: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *report || *svgPath != "" || *pngPath != "" {
		if err := runExports(cfg, *width, *height, *report, *svgPath, *pngPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg, *configPath, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
		os.Exit(1)
	}
}

// probeSize returns the size to build a registry from outside the TUI:
// explicit flags win, then the terminal, then a classic 80x24.
func probeSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if width > 0 {
			return width, h
		}
		if height > 0 {
			return w, height
		}
		return w, h
	}
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	return width, height
}

// runExports handles the non-interactive modes: text report, SVG, PNG.
func runExports(cfg *config.Config, width, height int, report bool, svgPath, pngPath string) error {
	w, h := probeSize(width, height)
	reg, err := breakpoint.NewRegistry(w, breakpoint.DetectOrientation(w, h), cfg.BreakpointSet())
	if err != nil {
		return err
	}

	if report {
		fmt.Print(export.Report(reg))
	}
	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", svgPath, err)
		}
		if err := export.WriteSVG(f, reg); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if pngPath != "" {
		if err := export.WritePNG(pngPath, reg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

// runTUI starts the preview program, with config hot-reload when enabled.
func runTUI(cfg *config.Config, configPath string, width, height int) error {
	m, err := ui.NewModel(cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.WatchEnabled() {
		path, err := config.ResolvePath(configPath)
		if err != nil {
			return err
		}
		w, err := watcher.New(path, 0, func() {
			reloaded, err := config.Load(path)
			if err != nil {
				p.Send(ui.ReloadFailedMsg{Err: err})
				return
			}
			p.Send(ui.ConfigReloadedMsg{Config: reloaded})
		})
		if err != nil {
			return err
		}
		defer w.Close()

		g.Go(func() error {
			err := w.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}

const guideText = `# rv — responsive preview

rv shows how a set of breakpoints segments terminal widths and how
responsive rulesets resolve against the current size.

## Configuration

Declare breakpoints in ` + "`rv.yaml`" + `:

    breakpoints:
      - name: compact
        width: 0
      - name: standard
        width: 100
      - name: wide
        width: 120
      - name: full
        width: 140
    viewer:
      theme: dark
      watch: true
      presets:
        - name: classic
          width: 80
          height: 24

The file is watched while the preview runs; edits apply immediately.

## Conditions

A ruleset pairs conditions with values. Comparisons are strict, and the
last declared matching condition wins:

- **equals** — active breakpoint is the named one
- **smaller_than** — width is strictly below the threshold
- **larger_than** — width is strictly above the threshold

A condition may carry a landscape override that replaces its value when
the terminal is wider than it is tall.

## Non-interactive use

    rv -report              # text report for the current terminal
    rv -width 84 -report    # report for a simulated width
    rv -svg ruler.svg       # SVG breakpoint ruler
    rv -png ruler.png       # PNG breakpoint ruler
`

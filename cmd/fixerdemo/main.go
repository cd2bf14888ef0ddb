// Command fixerdemo scrolls a long terminal document whose section headers
// stick to the top of the screen while their section is in view.
//
// Settings are read from the environment, after loading a .env file from the
// working directory if one exists:
//
//	FIXER_CONFIG            YAML tracker config, reloaded whenever the file changes
//	FIXER_LOG               signal log file (default fixerdemo.log)
//	FIXER_SECTIONS          number of sections (default 4)
//	FIXER_SECTION_ROWS      body rows per section (default 30)
//	FIXER_REVERSE           fix headers only while scrolling up
//	FIXER_SENSITIVITY       minimum scroll delta before re-evaluating
//	FIXER_OFFSET            rows subtracted from both thresholds
//	FIXER_AUTO_DISABLE      release headers taller than the screen (default true)
//	FIXER_RESIZE_DEBOUNCE   quiet period after a resize (default 100ms)
//
// Scroll with the arrow keys, j/k, PgUp/PgDn, space or the mouse wheel.
// Tab or a click focuses a section's search box. q or Esc quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/zoobzio/capitan"

	"github.com/zoobzio/fixer"
	"github.com/zoobzio/fixer/internal/term"
)

type settings struct {
	ConfigFile     string        `env:"FIXER_CONFIG"`
	LogFile        string        `env:"FIXER_LOG" envDefault:"fixerdemo.log"`
	Sections       int           `env:"FIXER_SECTIONS" envDefault:"4"`
	Rows           int           `env:"FIXER_SECTION_ROWS" envDefault:"30"`
	Reverse        bool          `env:"FIXER_REVERSE" envDefault:"false"`
	Sensitivity    int           `env:"FIXER_SENSITIVITY" envDefault:"0"`
	Offset         int           `env:"FIXER_OFFSET" envDefault:"0"`
	AutoDisable    bool          `env:"FIXER_AUTO_DISABLE" envDefault:"true"`
	ResizeDebounce time.Duration `env:"FIXER_RESIZE_DEBOUNCE" envDefault:"100ms"`
}

// config returns the tracker config described by the settings.
func (s settings) config() fixer.Config {
	cfg := fixer.DefaultConfig()
	cfg.Reverse = s.Reverse
	cfg.Sensitivity = s.Sensitivity
	cfg.Offset = s.Offset
	cfg.AutoDisable = s.AutoDisable
	cfg.ResizeEvent = true
	cfg.AutoUpdate = true
	cfg.AutoPadding = true
	cfg.AutoWidth = true
	cfg.AutoPosition = true
	cfg.ResizeDebounceMs = int(s.ResizeDebounce / time.Millisecond)
	return cfg
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fixerdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var s settings
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if s.Sections < 1 {
		return fmt.Errorf("FIXER_SECTIONS must be at least 1, got %d", s.Sections)
	}

	logFile, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	hookSignals(logFile)
	defer capitan.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	page, sections, headers := buildPage(s.Sections, s.Rows)
	host := term.NewHost(screen, page)

	base := s.config()
	trackers := make([]*fixer.Tracker, 0, len(headers))
	for i, header := range headers {
		cfg := base
		cfg.Container = sections[i]

		tr, err := fixer.New(host, header, cfg)
		if err != nil {
			return fmt.Errorf("track %s: %w", header.Name, err)
		}
		defer tr.Destroy()

		if s.ConfigFile != "" {
			if err := tr.Follow(ctx, fixer.NewFileWatcher(s.ConfigFile), fixer.YAMLCodec{}); err != nil {
				return fmt.Errorf("follow %s: %w", s.ConfigFile, err)
			}
		}
		trackers = append(trackers, tr)
	}
	page.Classes = func() fixer.Classes {
		return trackers[0].Config().Classes
	}

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildPage lays out a title followed by n sections, each with a header, a
// search box and rows of body text.
func buildPage(n, rows int) (*term.Page, []*term.Block, []*term.Block) {
	headerStyle := tcell.StyleDefault.Reverse(true).Bold(true)
	inputStyle := tcell.StyleDefault.Underline(true)

	root := term.NewBlock("page",
		"fixerdemo",
		"Section headers stick while their section is on screen.",
		"",
	)

	sections := make([]*term.Block, 0, n)
	headers := make([]*term.Block, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("section-%d", i)

		header := term.NewBlock(name+"-header", fmt.Sprintf(" Section %d ", i))
		header.Style = headerStyle

		search := term.NewBlock(name+"-search", "[ search ]")
		search.Style = inputStyle
		search.Focusable = true
		search.Indent = 2

		body := term.NewBlock(name + "-body")
		for r := 1; r <= rows; r++ {
			body.Lines = append(body.Lines, fmt.Sprintf("  %s, line %d", name, r))
		}

		section := term.NewBlock(name).Append(header, search, body)
		root.Append(section)

		sections = append(sections, section)
		headers = append(headers, header)
	}

	footer := term.NewBlock("footer", "", "-- end --")
	footer.MinRows = 10
	root.Append(footer)

	return term.NewPage(root), sections, headers
}

// hookSignals writes tracker signals to w.
func hookSignals(w io.Writer) {
	capitan.Hook(fixer.TrackerCreated, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		start, _ := fixer.KeyStart.From(e)
		end, _ := fixer.KeyEnd.From(e)
		fmt.Fprintf(w, "[CREATED] %s window [%d, %d]\n", short(id), start, end)
	})

	capitan.Hook(fixer.TrackerStateChanged, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		from, _ := fixer.KeyOldState.From(e)
		to, _ := fixer.KeyNewState.From(e)
		fmt.Fprintf(w, "[STATE] %s %s -> %s\n", short(id), from, to)
	})

	capitan.Hook(fixer.TrackerThresholdsComputed, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		start, _ := fixer.KeyStart.From(e)
		end, _ := fixer.KeyEnd.From(e)
		fmt.Fprintf(w, "[MEASURED] %s window [%d, %d]\n", short(id), start, end)
	})

	capitan.Hook(fixer.TrackerEvaluationSkipped, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		errMsg, _ := fixer.KeyError.From(e)
		fmt.Fprintf(w, "[SKIPPED] %s %s\n", short(id), errMsg)
	})

	capitan.Hook(fixer.TrackerResizeDebounced, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		d, _ := fixer.KeyDebounce.From(e)
		fmt.Fprintf(w, "[RESIZE] %s after %s\n", short(id), d)
	})

	capitan.Hook(fixer.TrackerConfigReloaded, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		fmt.Fprintf(w, "[APPLIED] %s\n", short(id))
	})

	capitan.Hook(fixer.TrackerConfigRejected, func(_ context.Context, e *capitan.Event) {
		id, _ := fixer.KeyTracker.From(e)
		errMsg, _ := fixer.KeyError.From(e)
		fmt.Fprintf(w, "[REJECTED] %s %s\n", short(id), errMsg)
	})
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

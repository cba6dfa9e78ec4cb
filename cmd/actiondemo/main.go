// Package main is a terminal demonstration of action binding: keys fire
// command and event bindings whose target view-model can be swapped at
// runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionbind/internal/action"
	"github.com/dshills/actionbind/internal/action/resolve"
	"github.com/dshills/actionbind/internal/action/target"
	"github.com/dshills/actionbind/internal/config"
	"github.com/dshills/actionbind/internal/fault"
	"github.com/dshills/actionbind/internal/log"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		designMode  bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&designMode, "design", false, "Enable design mode")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("actiondemo %s\n", version)
		return 0
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadTOML(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	cfg = config.ApplyEnv(cfg)
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if designMode {
		cfg.DesignMode = true
	}

	logFile, err := os.OpenFile("actiondemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Output: logFile,
		Prefix: "actiondemo",
	})

	fault.Init(fault.WithLogger(logger.WithComponent("fault")))
	defer fault.Teardown()

	if err := runUI(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runUI drives the tcell screen and the bindings.
func runUI(cfg config.Config, logger *log.Logger) error {
	reg := resolve.NewRegistry()
	resolve.Register[*counterModel](reg,
		resolve.Func0("Increment", (*counterModel).Increment),
		resolve.Func0("Decrement", (*counterModel).Decrement),
		resolve.Func0("Reset", (*counterModel).Reset),
		resolve.Func2("OnKey", (*counterModel).OnKey),
		resolve.Async0("SaveSlow", (*counterModel).SaveSlow),
	)

	factory := action.NewFactory(action.Config{
		Registry:      reg,
		Logger:        logger,
		DesignMode:    cfg.DesignMode,
		EnableMetrics: cfg.EnableMetrics,
	})

	modelA := &counterModel{name: "A", logger: logger}
	modelB := &counterModel{name: "B", logger: logger}

	subject := target.NewValue()
	subject.Set(modelA)

	spec := func(method string) action.Spec {
		return action.Spec{
			Method:     method,
			NullTarget: cfg.CommandNullTarget,
			NotFound:   cfg.CommandNotFound,
		}
	}

	increment, err := factory.Command(spec("Increment"), subject, nil)
	if err != nil {
		return err
	}
	decrement, err := factory.Command(spec("Decrement"), subject, nil)
	if err != nil {
		return err
	}
	reset, err := factory.Command(spec("Reset"), subject, nil)
	if err != nil {
		return err
	}
	save, err := factory.Command(spec("SaveSlow"), subject, nil)
	if err != nil {
		return err
	}
	keyBinding, err := factory.Event(action.Spec{
		Method:     "OnKey",
		NullTarget: cfg.EventNullTarget,
		NotFound:   cfg.EventNotFound,
	}, subject, nil)
	if err != nil {
		return err
	}
	onKey := keyBinding.Callback2()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	current := func() *counterModel {
		m, _ := subject.Current().(*counterModel)
		return m
	}

	for {
		drawFrame(screen, current(), increment)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() == tcell.KeyTab {
				if current() == modelA {
					subject.Set(modelB)
				} else {
					subject.Set(modelA)
				}
				continue
			}
			switch ev.Rune() {
			case 'q':
				return nil
			case '+':
				if increment.CanExecute() {
					_ = increment.Execute(nil)
				}
			case '-':
				if decrement.CanExecute() {
					_ = decrement.Execute(nil)
				}
			case 'r':
				if reset.CanExecute() {
					_ = reset.Execute(nil)
				}
			case 's':
				if save.CanExecute() {
					_ = save.Execute(nil)
				}
			case 'n':
				// Null target: commands follow the null-target behaviour.
				subject.Set(nil)
			default:
				_ = onKey(current(), ev.Rune())
			}
		}
	}
}

// drawFrame renders the counter state and binding availability.
func drawFrame(screen tcell.Screen, m *counterModel, increment *action.Command) {
	screen.Clear()

	style := tcell.StyleDefault
	if m != nil {
		drawString(screen, 2, 1, style.Bold(true), fmt.Sprintf("model %s  count %d", m.name, m.count))
	} else {
		drawString(screen, 2, 1, style.Bold(true), "model <nil>")
	}
	drawString(screen, 2, 3, style, fmt.Sprintf("increment enabled: %v", increment.CanExecute()))
	drawString(screen, 2, 5, style, "+/-: count  r: reset  s: slow save  tab: swap model  n: nil target  q: quit")

	screen.Show()
}

// drawString writes text at a position.
func drawString(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/max-pantom/work/internal/config"
	"github.com/max-pantom/work/internal/countdown"
	"github.com/max-pantom/work/internal/layout"
	"github.com/max-pantom/work/internal/logging"
	"github.com/max-pantom/work/internal/notify"
	"github.com/max-pantom/work/internal/screen"
	"github.com/max-pantom/work/internal/sound"
	"github.com/max-pantom/work/internal/style"
	"github.com/max-pantom/work/internal/tui"
)

func main() {
	cmd, args := "run", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	logger, closeLog, err := logging.FromEnv()
	if err != nil {
		exitErr(err)
	}

	if err := withLogClosed(run(cmd, args, logger), closeLog); err != nil {
		exitErr(err)
	}
}

// withLogClosed closes the log file before the process can exit and folds a
// close failure into err.
func withLogClosed(err error, closeLog func() error) error {
	if cerr := closeLog(); cerr != nil {
		return errors.Join(err, fmt.Errorf("close log: %w", cerr))
	}
	return err
}

func run(cmd string, args []string, logger *log.Logger) error {
	switch cmd {
	case "run", "ui":
		opts, err := parseRunFlags(cmd, args)
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		if err != nil {
			return err
		}
		if cmd == "ui" {
			return runUI(opts, logger)
		}
		return runPlain(opts, logger)

	case "chime":
		path := sound.DefaultPath()
		if len(args) > 0 {
			path = args[0]
		}
		sound.Chime(os.Stdout, path, sound.Play)

	case "help":
		usage()

	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

func usage() {
	fmt.Println("work - full-screen focus countdown")
	fmt.Println("Usage:")
	fmt.Println("  work [run] [flags]    Count down in the terminal (default 4h)")
	fmt.Println("  work ui [flags]       Same countdown on the alternate screen")
	fmt.Println("  work chime [file]     Play the completion sound (default done.wav)")
	fmt.Println("  work help             Show this help")
	fmt.Println("Flags:")
	fmt.Println("  -duration D           4h, 25m30s, or a number of seconds")
	fmt.Println("  -chime FILE           WAV to play when the goal completes")
	fmt.Println("  -notify               Desktop notification when the timer ends")
	fmt.Println("  -seed N               Fix the quote rotation")
	fmt.Printf("Environment: %s, %s, %s, %s\n", config.EnvDuration, config.EnvLogFile, config.EnvLogLevel, config.EnvNoColor)
}

type runOptions struct {
	duration time.Duration
	chime    string
	notify   bool
	seed     uint64
}

func parseRunFlags(name string, args []string) (runOptions, error) {
	def, err := config.Duration()
	if err != nil {
		return runOptions{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	duration := fs.String("duration", "", "run length: Go duration (4h, 25m) or seconds")
	chime := fs.String("chime", "", "WAV file to play when the goal completes")
	notifyEnd := fs.Bool("notify", false, "send a desktop notification when the timer ends")
	seed := fs.Uint64("seed", 0, "seed for quote rotation (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return runOptions{}, err
	}

	opts := runOptions{duration: def, chime: *chime, notify: *notifyEnd, seed: *seed}
	if *duration != "" {
		opts.duration, err = config.ParseDuration(*duration)
		if err != nil {
			return runOptions{}, err
		}
	}
	if opts.seed == 0 {
		opts.seed = rand.Uint64()
	}
	return opts, nil
}

func newTimer(opts runOptions) *countdown.Timer {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed>>1|1))
	return countdown.NewTimer(time.Now(), opts.duration, countdown.Quotes, rng)
}

func newPalette(logger *log.Logger) *style.Palette {
	p := style.NewPalette(os.Stdout, config.NoColor())
	logger.Debug("color profile", "profile", p.Profile().Name())
	return p
}

func runPlain(opts runOptions, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := screen.New(os.Stdout, logger)
	release := term.Acquire()
	defer release()

	loop := &countdown.Loop{
		Timer:    newTimer(opts),
		Display:  term,
		Clock:    countdown.SystemClock{},
		Waiter:   countdown.SleepWaiter{},
		Renderer: countdown.NewRenderer(newPalette(logger)),
		Logger:   logger,
		OnFinish: onFinish(opts, logger),
	}
	_, err := loop.Run(ctx)
	return err
}

func runUI(opts runOptions, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	renderer := countdown.NewRenderer(newPalette(logger))
	rep, err := tui.Run(ctx, newTimer(opts), renderer, logger)
	if err != nil {
		return err
	}

	term := screen.New(os.Stdout, logger)
	release := term.Acquire()
	defer release()
	term.Clear()
	term.Print(layout.Text(renderer.Final(rep), term.Size()))
	onFinish(opts, logger)(rep)
	return nil
}

func onFinish(opts runOptions, logger *log.Logger) func(countdown.Report) {
	return func(rep countdown.Report) {
		if opts.notify {
			if err := notify.Send("work", summary(rep)); err != nil {
				logger.Warn("notification failed", "err", err)
			}
		}
		if opts.chime != "" && rep.State == countdown.Complete {
			if err := sound.Play(opts.chime); err != nil {
				logger.Warn("chime failed", "path", opts.chime, "err", err)
			}
		}
	}
}

func summary(rep countdown.Report) string {
	if rep.State == countdown.Interrupted {
		return fmt.Sprintf("Interrupted after %s (%s left)", countdown.Clock(rep.Elapsed), countdown.Clock(rep.Remaining))
	}
	return fmt.Sprintf("Goal complete at %s", rep.At.Format(config.TimeLayout))
}

func exitErr(err error) {
	msg := err.Error()
	msg = strings.TrimSuffix(msg, "\n")
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

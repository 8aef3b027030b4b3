package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/engine"
	"github.com/tartampluch/go-ringclock/internal/render"
	"github.com/tartampluch/go-ringclock/internal/timesource"
	"github.com/tartampluch/go-ringclock/internal/ui"
)

// options carries the parsed command line.
type options struct {
	snapshot string
	hms      string
	size     int
	crt      bool
}

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)

	var opts options
	flag.StringVar(&opts.snapshot, config.FlagSnapshot, "", config.FlagDescSnapshot)
	flag.StringVar(&opts.hms, config.FlagTime, "", config.FlagDescTime)
	flag.IntVar(&opts.size, config.FlagSize, config.DefaultSnapshotSize, config.FlagDescSize)
	flag.BoolVar(&opts.crt, config.FlagCRT, false, config.FlagDescCRT)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	var err error
	if opts.snapshot != "" {
		err = snapshot(opts, engine.RealClock{})
	} else {
		err = run(ctx, opts)
	}
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// newClock builds the time source, frozen at opts.hms when it is set.
func newClock(opts options, wall engine.Clock) (*timesource.SimulatedClock, error) {
	clock := timesource.NewSimulatedClock(wall)
	if opts.hms != "" {
		if err := clock.Set(opts.hms); err != nil {
			return nil, err
		}
	}
	return clock, nil
}

// snapshot renders a single PNG without opening a window.
func snapshot(opts options, wall engine.Clock) error {
	if opts.size < config.MinFacePixels {
		return fmt.Errorf("%s: %d", config.ErrSizeInvalid, opts.size)
	}

	clock, err := newClock(opts, wall)
	if err != nil {
		return err
	}

	cfg := engine.DefaultConfig()
	cfg.Size = float64(opts.size)
	face := engine.ComputeFace(clock.TimePoint(), cfg)

	ropts := render.DefaultOptions()
	ropts.CRT = opts.crt
	return render.SavePNG(opts.snapshot, face, opts.size, opts.size, ropts)
}

// run starts the fyne UI and blocks until the window closes.
func run(ctx context.Context, opts options) error {
	clock, err := newClock(opts, engine.RealClock{})
	if err != nil {
		return err
	}

	a := app.NewWithID(config.AppID)
	gui := ui.NewClockFaceApp(a, ctx, clock)
	gui.SetCRT(opts.crt)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog handler on stdout and, when possible,
// on a log file in the user cache directory.
func setupLogging(debugMode bool) io.Closer {
	writers := []io.Writer{os.Stdout}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath returns the log location under the user cache directory.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}

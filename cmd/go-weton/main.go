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
	"time"

	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/data"
	"github.com/wetonku/go-weton/internal/engine"
	"github.com/wetonku/go-weton/internal/export"
	"github.com/wetonku/go-weton/internal/i18n"
	"github.com/wetonku/go-weton/internal/server"
)

// main delegates to runMain so deferred cleanups (log file) run before the
// process terminates; os.Exit skips defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	addrFlag := flag.String(config.FlagAddr, "", config.FlagDescAddr)
	portFlag := flag.String(config.FlagPort, "", config.FlagDescPort)
	envFile := flag.String(config.FlagEnvFile, "", config.FlagDescEnvFile)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// Structured logging comes up first to capture startup issues.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	settings, err := config.Load(*envFile)
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	if *addrFlag != "" {
		settings.Addr = *addrFlag
	}
	if *portFlag != "" {
		settings.Port = *portFlag
	}

	if err := run(ctx, settings); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the dependencies and blocks on the HTTP server.
func run(ctx context.Context, settings config.Settings) error {
	translator := i18n.New(settings.Language)

	holidays, err := data.Holidays()
	if err != nil {
		return err
	}
	releases, err := data.ProductReleases()
	if err != nil {
		return err
	}
	slog.Info(config.MsgDataLoaded,
		config.LogKeyComponent, config.CompData,
		config.LogKeyHolidays, len(holidays),
		config.LogKeyReleases, len(releases),
	)

	clock := engine.RealClock{}
	srv := server.New(settings.BindAddr(), clock, translator, holidays, releases, settings.ReminderTrigger)

	if settings.SyncEnabled() {
		gen := &engine.Generator{
			Clock:   clock,
			Fetcher: engine.NewHTTPFetcher(),
		}
		go syncWorker(ctx, gen, srv, translator, settings)
	}

	return srv.Start(ctx)
}

// syncWorker periodically resyncs the vCard contact source and republishes
// the birthday calendar feed. Each cycle is independent; a failed sync keeps
// the previous feed in place.
func syncWorker(ctx context.Context, gen *engine.Generator, srv *server.Server, translator *i18n.Translator, settings config.Settings) {
	interval := time.Duration(settings.SyncMinutes) * time.Minute
	log := slog.With(
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyMode, settings.SourceMode,
	)
	log.Info(config.MsgWorkerStart, config.LogKeyInterval, settings.SyncMinutes)

	syncCfg := engine.SyncConfig{
		Mode:      settings.SourceMode,
		LocalPath: settings.VCardPath,
		WebURL:    settings.VCardURL,
		WebUser:   settings.VCardUser,
		WebPass:   settings.VCardPass,
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		contacts, _, err := gen.RunSync(ctx, syncCfg)
		if err != nil {
			log.Error(config.MsgSyncFailed, config.LogKeyError, err)
		} else {
			feed, err := export.ContactCalendar(contacts, gen.Clock.Now(), settings.ReminderTrigger, translator.FormatSummary)
			if err != nil {
				log.Error(config.MsgSyncFailed, config.LogKeyError, err)
			} else {
				srv.UpdateCalendar(feed)
			}
		}

		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return
		case <-ticker.C:
		}
	}
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

// setupLogging configures the default slog logger: JSON to stdout, mirrored
// to a log file in the user cache dir when available.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	writers = append(writers, os.Stdout)

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
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

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
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

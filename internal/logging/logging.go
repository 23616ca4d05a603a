package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init initializes the global logger with dual sinks: os.Stderr and a rotating file.
func Init(verbose bool) {
	// 0. Load .env from binary directory to ensure LOGS_FOLDER is available.
	// We do this here because Init is called before config.Load.
	exePath, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exePath)
		_ = godotenv.Load(filepath.Join(exeDir, ".env"))
	}

	// 1. Determine log level
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	// 2. Setup Stderr Writer (Console)
	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	// 3. Setup File Writer (Rotating)
	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		if err == nil {
			logDir = filepath.Join(filepath.Dir(exePath), "logs")
		} else {
			logDir = "logs"
		}
	}

	// A broken log directory degrades to console-only logging rather than
	// refusing to run an otherwise read-only analysis.
	var sinks []io.Writer
	sinks = append(sinks, consoleWriter)

	if mkErr := os.MkdirAll(logDir, 0755); mkErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create log directory %q: %v\n", logDir, mkErr)
	} else {
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "issuelens.log"),
			MaxSize:    16, // megabytes
			MaxBackups: 32,
			MaxAge:     365, // days
			Compress:   true,
		})
	}

	// 4. Combine Writers
	multi := zerolog.MultiLevelWriter(sinks...)

	// 5. Set Global Logger
	log.Logger = zerolog.New(multi).
		With().
		Timestamp().
		Logger()
}

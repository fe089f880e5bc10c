package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/scenegridgo/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments on top of the defaults and the
// optional config file. It returns the merged configuration, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("scenegridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SceneGridGo - A declarative authoring and behavior-graph compiler for VR scenes.

Usage:
  scenegridgo [options] [PROJECT_PATH]

Arguments:
  PROJECT_PATH
    Path to a .xml project document, or to a directory of .hcl scene files.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	projectFlag := flagSet.String("project", "", "Path to the project document or scene directory.")
	pFlag := flagSet.String("p", "", "Path to the project document or scene directory (shorthand).")
	configFlag := flagSet.String("config", config.DefaultFileName, "Path to the YAML config file.")
	outputFlag := flagSet.String("output", defaults.OutputDir, "Directory for the compiled manifest and scripts.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	tickRateFlag := flagSet.Float64("tick-rate", defaults.TickRate, "Preview frame duration in seconds.")
	previewTicksFlag := flagSet.Int("preview-ticks", defaults.PreviewTicks, "Number of frames a preview run simulates.")
	previewFlag := flagSet.Bool("preview", false, "Simulate the compiled scene and report dispatched actions.")
	watchFlag := flagSet.Bool("watch", false, "Stay resident and recompile when scene files change.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := config.Default()
	if err := cfg.LoadFile(*configFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Flags the user actually set override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.OutputDir = *outputFlag
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "tick-rate":
			cfg.TickRate = *tickRateFlag
		case "preview-ticks":
			cfg.PreviewTicks = *previewTicksFlag
		case "preview":
			cfg.Preview = *previewFlag
		case "watch":
			cfg.Watch = *watchFlag
		}
	})

	path := cfg.ProjectPath
	if *projectFlag != "" {
		path = *projectFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Project path determined.", "path", path)

	if path == "" {
		slog.Debug("No project path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	cfg.ProjectPath = path

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	return &cfg, false, nil
}

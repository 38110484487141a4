package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/modslots/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("modslots", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
modslots - Loads content extensions into a slot registry and reports the assigned slots.

Usage:
  modslots [options] [MODS_PATH]

Arguments:
  MODS_PATH
    Path to a single .hcl file or a directory containing mod manifests.

Built-in extensions:
  %s

Options:
`, strings.Join(app.ExtensionNames(), ", "))
		flagSet.PrintDefaults()
	}

	modsFlag := flagSet.String("mods", "", "Path to the mod manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the mod manifest file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL file with session settings.")
	extFlag := flagSet.String("extensions", "", "Comma-separated built-in extensions to load before the manifests.")
	reportFlag := flagSet.String("report", "text", "Slot report format. Options: text, json, none, schema.")
	inspectPortFlag := flagSet.Int("inspect-port", 0, "Port for the HTTP inspect server. 0 is disabled.")
	unloadFlag := flagSet.Bool("unload", false, "Unload every extension after reporting.")
	syncURLFlag := flagSet.String("sync-url", "", "socket.io endpoint receiving extension packets.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *modsFlag != "" {
		path = *modsFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	var extensions []string
	for _, name := range strings.Split(*extFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			extensions = append(extensions, name)
		}
	}
	slog.Debug("Load targets determined.", "path", path, "extensions", extensions)

	if path == "" && len(extensions) == 0 {
		slog.Debug("Nothing to load, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ModsPath:    path,
		ConfigPath:  *configFlag,
		Extensions:  extensions,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Report:      strings.ToLower(*reportFlag),
		InspectPort: *inspectPortFlag,
		Unload:      *unloadFlag,
		SyncURL:     *syncURLFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/riggraph/internal/app"
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

// listFlag collects a flag given several times. Each value may itself be a
// comma-separated list.
type listFlag []string

func (l *listFlag) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("riggraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
RigGraph - Draws the relationship graph of an armature rig as DOT text.

Usage:
  riggraph [options] [SCENE_PATH...]

Arguments:
  SCENE_PATH
    Path to a .hcl/.yaml scene file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	var scenes, objects, bones listFlag
	flagSet.Var(&scenes, "scene", "Path to a scene file or directory. Repeatable.")
	flagSet.Var(&scenes, "s", "Path to a scene file or directory (shorthand).")
	flagSet.Var(&objects, "object", "Root object to graph. Repeatable or comma-separated; all objects when omitted.")
	flagSet.Var(&bones, "bone", "Bone to keep in 'selected' mode. Repeatable or comma-separated.")
	modeFlag := flagSet.String("mode", string(app.ModeAll), "Which bones to draw. Options: 'all', 'visible', 'selected', 'legend'.")
	excludeFlag := flagSet.String("exclude", "", "HCL expression over 'bone' and 'object'; matching bones are left out.")
	titleFlag := flagSet.String("title", "", "Graph caption. Defaults to a timestamped summary.")
	fontFlag := flagSet.String("font", "", "Font name for every graph element. Defaults to the platform's sans-serif font.")
	rankDirFlag := flagSet.String("rankdir", "", "Layout direction. Options: 'TB', 'BT', 'LR', 'RL'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := append([]string(scenes), flagSet.Args()...)
	mode := app.Mode(strings.ToLower(*modeFlag))
	slog.Debug("Scene paths determined.", "paths", paths, "mode", mode)

	if len(paths) == 0 && mode != app.ModeLegend {
		slog.Debug("No scene path provided, printing usage and exiting.")
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
		ScenePaths: paths,
		Objects:    objects,
		Mode:       mode,
		Bones:      bones,
		Exclude:    *excludeFlag,
		Title:      *titleFlag,
		FontName:   *fontFlag,
		RankDir:    strings.ToUpper(*rankDirFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

package command

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default_config.json
var defaultConfig []byte

const defaultConfigName = "config.json"

// Flags read by the service runner. Logs share the terminal with the game,
// so by default they are plain text and limited to warnings.
var defaultFlags = []struct {
	name  string
	value string
}{
	{name: "loglevel", value: "warn"},
	{name: "logformat", value: "text"},
}

// LaunchArgs returns args with defaults for any launch flag the user left
// out. A missing -config is pointed at the built-in config, written into dir.
func LaunchArgs(args []string, dir string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("program name is required")
	}

	given := flagsGiven(args[1:])

	var extra []string
	if !given["config"] {
		path := filepath.Join(dir, defaultConfigName)
		if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
		extra = append(extra, "-config", path)
	}
	for _, f := range defaultFlags {
		if !given[f.name] {
			extra = append(extra, "-"+f.name, f.value)
		}
	}

	// Flags stop at the first positional argument, so defaults go up front
	out := make([]string, 0, len(args)+len(extra))
	out = append(out, args[0])
	out = append(out, extra...)
	out = append(out, args[1:]...)
	return out, nil
}

// flagsGiven reports which flags appear in args. Every launch flag takes a
// value, so "-name value" skips the value.
func flagsGiven(args []string) map[string]bool {
	given := make(map[string]bool)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		given[name] = true
		if !hasValue {
			i++
		}
	}
	return given
}

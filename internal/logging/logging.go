package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"
)

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// Setup configures the global gommon logger and returns the writer it logs
// to, so the HTTP request log can share it. The returned close func releases
// the log file, if any.
func Setup(level, file string) (io.Writer, func() error, error) {
	lvl, ok := levels[level]
	if !ok {
		return nil, nil, fmt.Errorf("unknown log level: %s", level)
	}

	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetHeader(`${time_rfc3339} ${level} ${short_file}:${line}`)

	return out, closeFn, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// appContext is bound to the Run methods of commands
type appContext struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger

	documents int
}

// write renders v in the given format. YAML documents after the first one are
// preceded by a document separator
func (app *appContext) write(format string, v any) error {
	defer func() {
		app.documents++
	}()

	if format == formatJSON {
		enc := json.NewEncoder(app.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render yaml: %w", err)
	}
	if app.documents > 0 {
		if _, err := io.WriteString(app.Stdout, "---\n"); err != nil {
			return err
		}
	}
	_, err = app.Stdout.Write(data)
	return err
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// dataComponent is a component backed by a YAML document. Keys may be dotted
// paths into nested mappings. Handle understands "inc:<key>", "dec:<key>" and
// "toggle:<key>" on top-level keys.
type dataComponent struct {
	values map[string]any
	logger *slog.Logger
}

func loadData(path string, logger *slog.Logger) (*dataComponent, error) {
	if path == "" {
		return newDataComponent(nil, logger), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeData(f, logger)
}

func decodeData(r io.Reader, logger *slog.Logger) (*dataComponent, error) {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return newDataComponent(values, logger), nil
}

func newDataComponent(values map[string]any, logger *slog.Logger) *dataComponent {
	if values == nil {
		values = map[string]any{}
	}
	return &dataComponent{values: values, logger: logger}
}

func (d *dataComponent) Lookup(key string) (any, bool) {
	var cur any = d.values
	for part := range strings.SplitSeq(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func (d *dataComponent) Handle(message string) bool {
	op, key, ok := strings.Cut(message, ":")
	if !ok {
		d.logger.Warn("unsupported message", "message", message)
		return false
	}
	switch v := d.values[key].(type) {
	case int:
		switch op {
		case "inc":
			d.values[key] = v + 1
			return true
		case "dec":
			d.values[key] = v - 1
			return true
		}
	case float64:
		switch op {
		case "inc":
			d.values[key] = v + 1
			return true
		case "dec":
			d.values[key] = v - 1
			return true
		}
	case bool:
		if op == "toggle" {
			d.values[key] = !v
			return true
		}
	}
	d.logger.Warn("message does not apply", "message", message, "value", d.values[key])
	return false
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-polaris/pkg/wire"
)

// encode writes v in the requested format. Values go through their JSON form
// so YAML output keeps the same keys and order.
func encode(w io.Writer, format string, v any) error {
	var value wire.Value
	switch typed := v.(type) {
	case wire.Value:
		value = typed
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		value, err = wire.Parse(data)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	switch format {
	case "yaml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		data, err := wire.Indent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// readPayload reads a JSON or YAML payload from path, or from in when path
// is empty or "-". YAML is chosen by extension; other inputs are tried as
// JSON first.
func readPayload(in io.Reader, path string) (wire.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return wire.Value{}, fmt.Errorf("read payload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return wire.ParseYAML(data)
	}
	v, jsonErr := wire.Parse(data)
	if jsonErr == nil {
		return v, nil
	}
	if v, err := wire.ParseYAML(data); err == nil {
		return v, nil
	}
	return wire.Value{}, jsonErr
}

package menu

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var readFileFn = os.ReadFile

// LoadFile reads a menu definition. The format follows the extension:
// .toml, .yaml or .yml.
func LoadFile(path string) (Definition, error) {
	data, err := readFileFn(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read menu file: %w", err)
	}
	var def Definition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return Definition{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return Definition{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return Definition{}, fmt.Errorf("unsupported menu file extension %q", ext)
	}
	if err := def.Normalize(); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/taskboard/pkg/errors"
)

// Supported planfile formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the supported planfile formats.
var Formats = []string{FormatTOML, FormatYAML, FormatJSON}

// DetectFormat maps a file path or URL to a planfile format based on its
// extension. Unknown extensions return an INVALID_FORMAT error.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot detect plan format of %q (want .toml, .yaml, .yml, or .json)", path)
	}
}

// Decode reads a plan from r in the given format and validates it.
func Decode(r io.Reader, format string) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Unmarshal(data, format)
}

// Unmarshal parses a plan from data in the given format and validates it.
func Unmarshal(data []byte, format string) (*Plan, error) {
	var p Plan
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse TOML plan")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse YAML plan")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse JSON plan")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported plan format %q", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and validates a planfile, picking the codec from the file
// extension.
func Load(path string) (*Plan, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "planfile %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read planfile %s: %w", path, err)
	}

	return Unmarshal(data, format)
}

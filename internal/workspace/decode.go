package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/jsonc"

	"github.com/thoreinstein/maestro/internal/translate"
)

// Format identifies a user configuration file format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrMissingKey indicates a required key is absent from the document.
var ErrMissingKey = errors.New("missing required key")

// ErrDuplicateKey indicates an object repeats a key.
var ErrDuplicateKey = errors.New("duplicate key")

// FormatFromPath picks a format from the file extension.
// Anything that is not YAML or TOML is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// rawConfig and rawWorkspace mirror the wire shape with pointer fields so
// absent keys can be told apart from empty values.
type rawConfig struct {
	Workspaces *[]rawWorkspace `json:"workspaces"`
}

type rawWorkspace struct {
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	Path                *string    `json:"workspace_path"`
	ContainerWorkingDir *string    `json:"container_working_dir"`
	LastUpdated         *time.Time `json:"last_updated"`
}

// Decode parses a user configuration document. It reports structural
// problems only; the result still needs [Config.Validate].
func Decode(data []byte, format Format) (*Config, error) {
	var (
		doc []byte
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = translate.YAMLToJSON(data)
	case FormatTOML:
		doc, err = translate.TOMLToJSON(data)
	default:
		doc = jsonc.ToJSON(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", format)
	}

	var raw rawConfig
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding user configuration")
	}
	if err := checkDuplicateKeys(doc); err != nil {
		return nil, err
	}
	if raw.Workspaces == nil {
		return nil, errors.Wrap(ErrMissingKey, `"workspaces"`)
	}

	cfg := &Config{Workspaces: make([]Workspace, 0, len(*raw.Workspaces))}
	for i, rw := range *raw.Workspaces {
		ws, err := rw.toWorkspace()
		if err != nil {
			return nil, errors.Wrapf(err, "workspaces[%d]", i)
		}
		cfg.Workspaces = append(cfg.Workspaces, ws)
	}
	return cfg, nil
}

func (rw rawWorkspace) toWorkspace() (Workspace, error) {
	switch {
	case rw.Name == nil:
		return Workspace{}, errors.Wrap(ErrMissingKey, `"name"`)
	case rw.Description == nil:
		return Workspace{}, errors.Wrap(ErrMissingKey, `"description"`)
	case rw.Path == nil:
		return Workspace{}, errors.Wrap(ErrMissingKey, `"workspace_path"`)
	}
	return Workspace{
		Name:                *rw.Name,
		Description:         *rw.Description,
		Path:                *rw.Path,
		ContainerWorkingDir: rw.ContainerWorkingDir,
		LastUpdated:         rw.LastUpdated,
	}, nil
}

// checkDuplicateKeys walks a well-formed JSON document and rejects any
// object that repeats a key; encoding/json would silently keep the last one.
func checkDuplicateKeys(doc []byte) error {
	dec := json.NewDecoder(bytes.NewReader(doc))

	var walk func(path string) error
	walk = func(path string) error {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "scanning user configuration")
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			return nil
		}

		switch delim {
		case '{':
			seen := make(map[string]bool)
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return errors.Wrap(err, "scanning user configuration")
				}
				key, _ := tok.(string)
				if seen[key] {
					return errors.Wrapf(ErrDuplicateKey, "%q in %s", key, path)
				}
				seen[key] = true
				if err := walk(path + "." + key); err != nil {
					return err
				}
			}
		case '[':
			for i := 0; dec.More(); i++ {
				if err := walk(fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}

		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return errors.Wrap(err, "scanning user configuration")
		}
		return nil
	}
	return walk("$")
}

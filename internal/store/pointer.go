package store

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/maestro/pkg/fileutil"
)

// Pointer records where the user configuration file lives.
type Pointer struct {
	// ConfigFilePath is the absolute path of the user configuration file.
	ConfigFilePath string `json:"config_file_path"`
}

// NewPointer builds a pointer for path. The path is stored as given;
// callers canonicalize it first.
func NewPointer(path string) Pointer {
	return Pointer{ConfigFilePath: path}
}

// Marshal encodes the pointer as indented JSON.
func (p Pointer) Marshal() ([]byte, error) {
	return fileutil.MarshalJSONIndent(p)
}

// UnmarshalPointer decodes a pointer record and rejects one without a path.
func UnmarshalPointer(data []byte) (Pointer, error) {
	var raw struct {
		ConfigFilePath *string `json:"config_file_path"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Pointer{}, errors.Wrap(err, "decoding pointer")
	}
	if raw.ConfigFilePath == nil {
		return Pointer{}, errors.New(`missing required key "config_file_path"`)
	}
	if *raw.ConfigFilePath == "" {
		return Pointer{}, errors.New(`"config_file_path" must not be empty`)
	}
	return NewPointer(*raw.ConfigFilePath), nil
}

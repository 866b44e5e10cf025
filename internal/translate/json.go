// Package translate converts YAML and TOML documents to JSON so a single
// strict JSON decoder can handle every supported user configuration format.
package translate

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// YAMLToJSON converts YAML data to JSON data.
// An empty document becomes JSON null.
func YAMLToJSON(yamlData []byte) ([]byte, error) {
	var data any
	if err := yaml.Unmarshal(yamlData, &data); err != nil {
		return nil, fmt.Errorf("unmarshaling yaml: %w", err)
	}
	normalized, err := normalize(data)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("marshaling json: %w", err)
	}
	return out, nil
}

// TOMLToJSON converts TOML data to JSON data. Local date-times and dates
// carry no offset in TOML; they are read as UTC so they encode as RFC 3339.
func TOMLToJSON(tomlData []byte) ([]byte, error) {
	var data map[string]any
	if err := toml.Unmarshal(tomlData, &data); err != nil {
		return nil, fmt.Errorf("unmarshaling toml: %w", err)
	}
	out, err := json.Marshal(localTimesToUTC(data))
	if err != nil {
		return nil, fmt.Errorf("marshaling json: %w", err)
	}
	return out, nil
}

// normalize rewrites YAML mappings with non-string keys into string-keyed
// maps, which encoding/json requires.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		for i, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}

func localTimesToUTC(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = localTimesToUTC(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = localTimesToUTC(val)
		}
		return t
	case []map[string]any:
		for i, val := range t {
			t[i] = localTimesToUTC(val).(map[string]any)
		}
		return t
	case toml.LocalDateTime:
		return t.AsTime(time.UTC)
	case toml.LocalDate:
		return t.AsTime(time.UTC)
	default:
		return v
	}
}

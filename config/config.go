// Package config loads solve parameters from YAML files and from form
// values. Values are decoded weakly, so numbers given as strings such as
// "0.001" are accepted.
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/btracey/rootfind/univariate"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path and applies its keys over base. Keys
// missing from the file keep the value from base.
func Load(path string, base univariate.Params) (univariate.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return Parse(data, base)
}

// Parse decodes YAML data over base.
func Parse(data []byte, base univariate.Params) (univariate.Params, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("config: parsing yaml: %w", err)
	}
	return Decode(raw, base)
}

// FromValues decodes form or query values over base. Only the first value
// of each key is used.
func FromValues(values url.Values, base univariate.Params) (univariate.Params, error) {
	raw := make(map[string]interface{}, len(values))
	for k, v := range values {
		if len(v) > 0 {
			raw[k] = v[0]
		}
	}
	return Decode(raw, base)
}

// Decode applies raw over base. Unknown keys are an error.
func Decode(raw map[string]interface{}, base univariate.Params) (univariate.Params, error) {
	p := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
	})
	if err != nil {
		return base, err
	}
	if err := dec.Decode(raw); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

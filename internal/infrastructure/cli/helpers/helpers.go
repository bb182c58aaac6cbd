package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tifan9/termfolio/internal/domain"
)

// ConfigToGenericMap converts the config into nested maps keyed by YAML names.
func ConfigToGenericMap(cfg domain.Config) (map[string]interface{}, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert configuration: %w", err)
	}
	return out, nil
}

// GenericMapToConfig is the inverse of ConfigToGenericMap.
func GenericMapToConfig(m map[string]interface{}) (domain.Config, error) {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return domain.Config{}, err
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// TraverseNestedMap follows a key path through nested maps.
func TraverseNestedMap(data interface{}, keyPath []string) (interface{}, bool) {
	if len(keyPath) == 0 {
		return data, true
	}
	node, ok := data.(map[string]interface{})
	if !ok {
		return nil, false
	}
	next, ok := node[keyPath[0]]
	if !ok {
		return nil, false
	}
	return TraverseNestedMap(next, keyPath[1:])
}

// SetNestedMapValue sets a value in a nested map using a key path, creating
// intermediate maps as needed. Returns false for an empty path.
func SetNestedMapValue(root map[string]interface{}, keyPath []string, value interface{}) bool {
	if len(keyPath) == 0 {
		return false
	}
	current := root
	for _, key := range keyPath[:len(keyPath)-1] {
		child, ok := current[key].(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			current[key] = child
		}
		current = child
	}
	current[keyPath[len(keyPath)-1]] = value
	return true
}

// ParseYAMLValue parses a string value as YAML, falling back to literal string
func ParseYAMLValue(input string) interface{} {
	var parsed interface{}
	if err := yaml.Unmarshal([]byte(input), &parsed); err != nil {
		return input
	}
	return parsed
}

// WriteHealthReport prints one line per check, or JSON when asJSON is set.
func WriteHealthReport(out io.Writer, report domain.HealthReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
	return nil
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// The file must contain a flat mapping of flag names to values. Flag names
// with hyphens (e.g., "log-level") may use underscores in the config file
// (e.g., "log_level").
//
// Example config file:
//
//	log_level: debug
//	log_format: text
//	log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=text
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return yamlConfig{}, nil
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		// Malformed config - ignore and let Kong use defaults
		return yamlConfig{}, nil
	}

	return yamlConfig(values), nil
}

// yamlConfig implements [kong.Resolver] for YAML configs.
type yamlConfig map[string]any

// Validate implements [kong.Resolver].
func (r yamlConfig) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r yamlConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	value, ok := r[flag.Name]
	if !ok {
		value, ok = r[strings.ReplaceAll(flag.Name, "-", "_")]
	}

	if !ok {
		// Not found - return nil to let Kong use defaults
		return nil, nil
	}

	// Kong requires numbers as strings for parsing.
	switch v := value.(type) {
	case int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return value, nil
	}
}

package conf

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Export formats.
const (
	FormatConf = "conf"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats accepted by Export.
var Formats = []string{FormatConf, FormatJSON, FormatYAML}

// Export writes cfg to w in the named format.
func Export(w io.Writer, cfg *Config, format string) error {
	switch format {
	case FormatConf:
		return Render(w, cfg)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config as JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config as YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q: supported formats are %q, %q and %q",
			format, FormatConf, FormatJSON, FormatYAML)
	}
}

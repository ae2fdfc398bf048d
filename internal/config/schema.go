// Package config provides loading and validation for testengine.json.
package config

// FileName is the config file looked up in the working directory.
const FileName = "testengine.json"

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "TESTENGINE_CONFIG"

// Config represents the complete testengine.json configuration.
type Config struct {
	// Manifest is a path to a YAML annotation manifest. After loading it is
	// relative to the working directory, not to the config file.
	Manifest string        `json:"manifest,omitempty"`
	Output   *OutputConfig `json:"output,omitempty"`
}

// OutputConfig controls console reporting.
type OutputConfig struct {
	Color          string `json:"color,omitempty"` // "auto", "always" or "never"
	Banner         *bool  `json:"banner,omitempty"`
	SeparatorWidth int    `json:"separator_width,omitempty"`
}

// ColorMode selects when ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ShowBanner reports whether the banner should be printed.
func (o *OutputConfig) ShowBanner() bool {
	return o == nil || o.Banner == nil || *o.Banner
}

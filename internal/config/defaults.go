package config

// Default configuration values.
const (
	DefaultColor          = ColorAuto
	DefaultSeparatorWidth = 80
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = string(DefaultColor)
	}
	if cfg.Output.Banner == nil {
		banner := true
		cfg.Output.Banner = &banner
	}
	if cfg.Output.SeparatorWidth == 0 {
		cfg.Output.SeparatorWidth = DefaultSeparatorWidth
	}
}

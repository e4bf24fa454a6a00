package config

import "github.com/spf13/viper"

// DefaultExpectedVersion is the snapshot format this tool was written against.
const DefaultExpectedVersion = "0.005"

type Config struct {
	Snapshot        string       `mapstructure:"snapshot"`
	ExpectedVersion string       `mapstructure:"expected_version"`
	Format          string       `mapstructure:"format"` // text, yaml, json, d2
	Output          string       `mapstructure:"output"`
	Direction       string       `mapstructure:"direction"`
	Theme           string       `mapstructure:"theme"`
	Render          RenderConfig `mapstructure:"render"`
}

type RenderConfig struct {
	AutoRender bool   `mapstructure:"auto_render"`
	Format     string `mapstructure:"format"` // svg, png
}

func Load() (*Config, error) {
	viper.SetDefault("snapshot", "zxtm.json")
	viper.SetDefault("expected_version", DefaultExpectedVersion)
	viper.SetDefault("format", "text")
	viper.SetDefault("direction", "right")
	viper.SetDefault("theme", "default")
	viper.SetDefault("render.format", "svg")

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

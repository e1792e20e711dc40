package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPrompt       = "cmd> "
	DefaultHistoryLimit = 500
)

type Config struct {
	Prompt       string `toml:"prompt,omitempty"`
	HistoryLimit int    `toml:"history_limit,omitempty"`
	Color        bool   `toml:"color"`
}

func Default() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		HistoryLimit: DefaultHistoryLimit,
		Color:        true,
	}
}

// Parse decodes TOML on top of the defaults. Keys missing from the input
// keep their default values.
func Parse(r io.Reader) (*Config, error) {
	out := Default()
	md, err := toml.NewDecoder(r).Decode(out)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Package config loads the tool's YAML configuration. Every field has a
// usable default so the tool runs with no config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/packbits/pkg/checksum"
	"github.com/rawbytedev/packbits/pkg/compress"
)

// Config holds the CLI defaults. Flags override whatever is loaded here.
type Config struct {
	// Codec names the compression codec applied to packed payloads.
	Codec string `yaml:"codec"`
	// Level is the codec-specific compression level; zero picks the codec's
	// default.
	Level int `yaml:"level"`
	// Checksum names the algorithm recorded in container frames, or "none".
	Checksum string `yaml:"checksum"`
	// MaskInput forces bytes above 0x7f down to 7 bits instead of failing.
	MaskInput bool `yaml:"mask_input"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Codec:    "zstd",
		Checksum: "fletcher32",
	}
}

// Load reads a YAML config from path. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// setDefaults replaces empty or unrecognized values with the defaults.
func (c *Config) setDefaults() {
	d := Default()
	if _, err := compress.Lookup(c.Codec); err != nil {
		if c.Codec != "" {
			fmt.Fprintf(os.Stderr, "config: unknown codec %q, using %q\n", c.Codec, d.Codec)
		}
		c.Codec = d.Codec
	}
	if _, err := checksum.ByName(c.Checksum); err != nil && c.Checksum != "none" {
		if c.Checksum != "" {
			fmt.Fprintf(os.Stderr, "config: unknown checksum %q, using %q\n", c.Checksum, d.Checksum)
		}
		c.Checksum = d.Checksum
	}
}

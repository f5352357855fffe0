// Package config loads the optional YAML settings of the jdn command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SebastiaanKlippert/go-jdn"
)

// EnvVar names the environment variable consulted when no --config flag is given.
const EnvVar = "JDN_CONFIG"

var Outputs = []string{"text", "json", "yaml"}

type Config struct {
	Calendar string `yaml:"calendar"`
	Output   string `yaml:"output"`
}

func Default() Config {
	return Config{Calendar: jdn.Gregorian.String(), Output: "text"}
}

// Path returns flagPath if set, otherwise the value of EnvVar.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := jdn.ParseCalendar(c.Calendar); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	return ValidateOutput(c.Output)
}

func ValidateOutput(out string) error {
	for _, o := range Outputs {
		if out == o {
			return nil
		}
	}
	return fmt.Errorf("output %q: expected one of %s", out, strings.Join(Outputs, ", "))
}

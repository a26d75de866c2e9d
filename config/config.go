// Package config loads the separators and byte order used by the column
// adapters.
package config

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/dpd/field"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// Config represents the codec configuration.
type Config struct {
	// DecimalSeparator is a single ASCII character.
	DecimalSeparator string `yaml:"decimal_separator"`

	// ThousandsSeparator lists characters ignored in integer input.
	ThousandsSeparator string `yaml:"thousands_separator"`

	// ByteOrder is "big" or "little".
	ByteOrder string `yaml:"byte_order"`

	Nullable bool `yaml:"nullable"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DecimalSeparator: ".",
		ByteOrder:        "big",
	}
}

// Load reads the configuration at path. Unset fields keep their defaults.
func Load(path string) (c *Config, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	c = Default()

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Save writes the configuration to path.
func Save(c *Config, path string) (err error) {
	defer Error.WrapP(&err)

	err = c.Validate()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Validate checks the configuration values.
func (c *Config) Validate() (err error) {
	if len(c.DecimalSeparator) != 1 || c.DecimalSeparator[0] >= 0x80 {
		return Error.New("decimal_separator must be one ASCII character: %q", c.DecimalSeparator)
	}

	for _, r := range c.ThousandsSeparator {
		if r >= '0' && r <= '9' || r == '-' {
			return Error.New("invalid thousands_separator: %q", r)
		}
	}

	_, err = c.order()

	return err
}

func (c *Config) order() (binary.ByteOrder, error) {
	switch c.ByteOrder {
	case "", "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	}

	return nil, Error.New("invalid byte_order: %q", c.ByteOrder)
}

// Schema returns the column schema for t.
func (c *Config) Schema(t field.Type) (s field.Schema, err error) {
	err = c.Validate()
	if err != nil {
		return s, err
	}

	order, err := c.order()
	if err != nil {
		return s, err
	}

	return field.Schema{
		Type:      t,
		Order:     order,
		Separator: c.DecimalSeparator[0],
		Thousands: []rune(c.ThousandsSeparator),
		Nullable:  c.Nullable,
	}, nil
}

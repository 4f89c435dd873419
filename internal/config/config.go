// Package config holds the inventory tool configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

const appName = "inventory"

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type StoreConfig struct {
	Driver string `koanf:"driver"`
}

type Config struct {
	Store    StoreConfig           `koanf:"store"`
	Mongo    config.MongoConfig    `koanf:"mongo"`
	Log      config.LogConfig      `koanf:"log"`
	Shutdown config.ShutdownConfig `koanf:"shutdown"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"store.driver":     DriverMongo,
		"mongo.database":   "shop",
		"mongo.collection": "products",
		"mongo.timeout":    "10s",
		"log.level":        "error",
		"shutdown.timeout": "5s",
	}
}

// Load reads the configuration from config.yaml, .env and INVENTORY_* environment variables.
// overrides take precedence over every other source.
func Load(overrides map[string]any) (*Config, error) {
	return configloader.Load[*Config](appName, configloader.Options{
		Defaults:  Defaults(),
		Overrides: overrides,
	})
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Store Configuration ---\n")
	b.WriteString(fmt.Sprintf("  store.driver: %s\n", c.Store.Driver))
	if c.Store.Driver == DriverMongo {
		b.WriteString(c.Mongo.String())
	}
	b.WriteString(c.Log.String())
	b.WriteString(c.Shutdown.String())

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	return nil
}

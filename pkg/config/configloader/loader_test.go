package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Mongo struct {
		URI      string `koanf:"uri"`
		Database string `koanf:"database"`
	} `koanf:"mongo"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

var errNoURI = errors.New("no uri")

func (c *testConfig) Validate() error {
	if c.Mongo.URI == "" {
		return errNoURI
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Load_Precedence(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "config.yaml", "mongo:\n  uri: mongodb://yaml:27017\n  database: fromyaml\nlog:\n  level: info\n")
	envFile := writeFile(t, dir, ".env", "TESTAPP_MONGO_DATABASE=fromdotenv\nOTHER_VALUE=ignored\n")
	t.Setenv("TESTAPP_LOG_LEVEL", "debug")

	cfg, err := Load[*testConfig]("testapp", Options{
		ConfigFile: yamlFile,
		EnvFile:    envFile,
		Defaults:   map[string]any{"mongo.database": "default", "log.level": "error"},
		Overrides:  map[string]any{"mongo.uri": "mongodb://flag:27017"},
	})

	require.NoError(t, err)
	assert.Equal(t, "mongodb://flag:27017", cfg.Mongo.URI, "overrides win")
	assert.Equal(t, "fromdotenv", cfg.Mongo.Database, ".env beats yaml")
	assert.Equal(t, "debug", cfg.Log.Level, "system env beats yaml")
}

func Test_Load_DefaultsOnly(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load[*testConfig]("testapp", Options{
		ConfigFile: filepath.Join(dir, "missing.yaml"),
		EnvFile:    filepath.Join(dir, "missing.env"),
		Defaults:   map[string]any{"mongo.uri": "mongodb://localhost:27017", "mongo.database": "shop"},
	})

	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "shop", cfg.Mongo.Database)
}

func Test_Load_ValidationError(t *testing.T) {
	dir := t.TempDir()

	_, err := Load[*testConfig]("testapp", Options{
		ConfigFile: filepath.Join(dir, "missing.yaml"),
		EnvFile:    filepath.Join(dir, "missing.env"),
		Defaults:   map[string]any{"log.level": "error"},
	})

	assert.ErrorIs(t, err, errNoURI)
}

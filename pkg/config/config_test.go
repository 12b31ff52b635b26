package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokasync/cloudota/pkg/models"
)

type testConfig struct {
	Name    string            `json:"name"`
	Count   int               `json:"count"`
	Enabled bool              `json:"enabled"`
	Timeout models.Duration   `json:"timeout"`
	MQTT    models.MQTTConfig `json:"mqtt"`
}

var errNameRequired = errors.New("name is required")

func (c *testConfig) Validate() error {
	if c.Name == "" {
		return errNameRequired
	}

	return nil
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFileConfigLoader(t *testing.T) {
	path := writeConfigFile(t, `{"name":"cloudota","count":3,"enabled":true,"timeout":"45s"}`)

	var cfg testConfig

	loader := &FileConfigLoader{}
	require.NoError(t, loader.Load(context.Background(), path, &cfg))

	assert.Equal(t, "cloudota", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, models.Duration(45*time.Second), cfg.Timeout)
}

func TestFileConfigLoaderMissingFile(t *testing.T) {
	var cfg testConfig

	loader := &FileConfigLoader{}
	err := loader.Load(context.Background(), "/nonexistent/config.json", &cfg)
	require.Error(t, err)
}

func TestFileConfigLoaderInvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	var cfg testConfig

	loader := &FileConfigLoader{}
	require.Error(t, loader.Load(context.Background(), path, &cfg))
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfigFile(t, `{"name":"cloudota"}`)

	var cfg testConfig

	c := NewConfig(nil)
	require.NoError(t, c.LoadAndValidate(context.Background(), path, &cfg))
}

func TestLoadAndValidateFailsValidation(t *testing.T) {
	path := writeConfigFile(t, `{"count":1}`)

	var cfg testConfig

	c := NewConfig(nil)
	err := c.LoadAndValidate(context.Background(), path, &cfg)
	require.ErrorIs(t, err, errNameRequired)
}

func TestEnvConfigLoader(t *testing.T) {
	t.Setenv("TESTCFG_NAME", "from-env")
	t.Setenv("TESTCFG_COUNT", "7")
	t.Setenv("TESTCFG_ENABLED", "true")
	t.Setenv("TESTCFG_TIMEOUT", "30s")
	t.Setenv("TESTCFG_MQTT_BROKER_URL", "tcp://broker:1883")
	t.Setenv("TESTCFG_MQTT_QOS", "1")

	var cfg testConfig

	loader := NewEnvConfigLoader(nil, "TESTCFG_")
	require.NoError(t, loader.Load(context.Background(), "", &cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, models.Duration(30*time.Second), cfg.Timeout)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTT.BrokerURL)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)
}

func TestEnvConfigLoaderJSONPrecedence(t *testing.T) {
	t.Setenv("TESTCFG_CONFIG_JSON", `{"name":"from-json","count":9}`)
	t.Setenv("TESTCFG_NAME", "from-env")

	var cfg testConfig

	loader := NewEnvConfigLoader(nil, "TESTCFG_")
	require.NoError(t, loader.Load(context.Background(), "", &cfg))

	assert.Equal(t, "from-json", cfg.Name)
	assert.Equal(t, 9, cfg.Count)
}

func TestEnvConfigLoaderRejectsNonPointer(t *testing.T) {
	loader := NewEnvConfigLoader(nil, "TESTCFG_")

	err := loader.Load(context.Background(), "", testConfig{})
	require.ErrorIs(t, err, ErrDstMustBeNonNilPointer)
}

func TestLoaderForSource(t *testing.T) {
	c := NewConfig(nil)

	t.Setenv("CONFIG_SOURCE", "env")

	loader, err := c.loaderForSource()
	require.NoError(t, err)
	assert.IsType(t, &EnvConfigLoader{}, loader)

	t.Setenv("CONFIG_SOURCE", "file")

	loader, err = c.loaderForSource()
	require.NoError(t, err)
	assert.IsType(t, &FileConfigLoader{}, loader)

	t.Setenv("CONFIG_SOURCE", "consul")

	_, err = c.loaderForSource()
	require.ErrorIs(t, err, errInvalidConfigSource)
}

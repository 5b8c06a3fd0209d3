// Package config handles input from etc/*.toml files with an optional json
// override taken from the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// configJSONEnv overrides main.toml values with a json document, used for
// container deployments.
const configJSONEnv = "GO_LAVACAR_CONFIG_JSON"

// ReadConfig reads the main config file from path, applies the env
// override and validates the result.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	if _, err := toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if jsonConfig := os.Getenv(configJSONEnv); jsonConfig != "" {
		if err := json.Unmarshal([]byte(jsonConfig), &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to merge config override from env")
		}
	}

	if err := validate(&c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// DumpConfig renders the config as a TOML string.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON renders the config as a JSON string.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the minimal settings the service can not run without and
// fills defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // default of 5 seconds
	}

	return nil
}

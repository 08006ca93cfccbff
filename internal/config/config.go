// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves credentials and runtime settings from the
// environment. Settings are read through viper with the TWITCHY_ prefix, so
// TWITCHY_CLIENT_ID maps to the "client_id" key. An optional dotenv file is
// loaded first; variables already present in the environment take
// precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/twitchy/pkg/types"
)

// EnvPrefix is prepended to every key when it is looked up in the environment.
const EnvPrefix = "TWITCHY"

// DefaultUserAgent is sent with every Helix request.
const DefaultUserAgent = "twitchy/0.1"

const (
	keyClientID  = "client_id"
	keyToken     = "token"
	keyLogLevel  = "log_level"
	keyUserAgent = "user_agent"
	keyEnvFile   = "env_file"
)

// defaultEnvFile is loaded when TWITCHY_ENV_FILE is not set. Its absence is
// not an error.
const defaultEnvFile = ".env"

// ConfigError reports a required setting that is missing. Error returns a
// message suitable for printing as-is.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// New returns a viper instance bound to the TWITCHY_ environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{keyClientID, keyToken, keyLogLevel, keyUserAgent, keyEnvFile} {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key)
	}
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyUserAgent, DefaultUserAgent)
	return v
}

// LoadDotenv loads the file named by TWITCHY_ENV_FILE, or ./.env when that is
// unset, into the process environment without overriding existing
// variables. It returns the path that was loaded, or "" when the default
// file does not exist. A missing explicit file is an error.
func LoadDotenv(v *viper.Viper) (string, error) {
	path := v.GetString(keyEnvFile)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("loading env file %s: %w", path, err)
	}
	return path, nil
}

// Credentials returns the client id and token. The client id is checked
// first; an empty value counts as missing.
func Credentials(v *viper.Viper) (types.Credentials, error) {
	clientID := v.GetString(keyClientID)
	if clientID == "" {
		return types.Credentials{}, &ConfigError{Key: keyClientID, Message: "Client id missing"}
	}
	token := v.GetString(keyToken)
	if token == "" {
		return types.Credentials{}, &ConfigError{Key: keyToken, Message: "OAuth token missing"}
	}
	return types.Credentials{ClientID: clientID, Token: token}, nil
}

// Helix returns the transport settings.
func Helix(v *viper.Viper) types.HelixConfig {
	return types.HelixConfig{
		UserAgent: v.GetString(keyUserAgent),
		LogLevel:  v.GetString(keyLogLevel),
	}
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type configValue struct {
	envVarName   string
	required     bool
	errorMessage string
	defaultValue string
	Value        string
}

func (v configValue) String() string {
	return v.Value
}

type Config struct {
	DatabaseUrl configValue
	OutputPath  configValue
	Environment configValue
	LogLevel    configValue
	SeqUrl      configValue
	SeqToken    configValue
}

func NewConfig() *Config {
	const databaseUrlName = "DATABASE_URL"
	const outputPathName = "OUTPUT_PATH"
	const environmentName = "ENVIRONMENT"
	const logLevelName = "LOG_LEVEL"
	const seqUrlName = "SEQ_URL"
	const seqTokenName = "SEQ_TOKEN"

	return &Config{
		DatabaseUrl: configValue{
			envVarName:   databaseUrlName,
			defaultValue: "property.db",
			errorMessage: fmt.Sprintf("make sure that environment variable %s is a postgres DSN or a sqlite file path", databaseUrlName),
		},
		OutputPath: configValue{
			envVarName:   outputPathName,
			defaultValue: "data",
		},
		Environment: configValue{
			envVarName:   environmentName,
			defaultValue: "development",
		},
		LogLevel: configValue{
			envVarName:   logLevelName,
			defaultValue: "info",
		},
		SeqUrl: configValue{
			envVarName: seqUrlName,
		},
		SeqToken: configValue{
			envVarName: seqTokenName,
		},
	}
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the process environment only. In production DATABASE_URL
// has no SQLite fallback and must be set.
func FromEnv() (*Config, error) {
	config := NewConfig()

	if err := populateEnv(&config.Environment); err != nil {
		return nil, err
	}
	if config.IsProduction() {
		config.DatabaseUrl.required = true
		config.DatabaseUrl.defaultValue = ""
	}

	for _, v := range config.values() {
		if err := populateEnv(v); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment.Value == "production"
}

func (c *Config) values() []*configValue {
	return []*configValue{
		&c.DatabaseUrl,
		&c.OutputPath,
		&c.Environment,
		&c.LogLevel,
		&c.SeqUrl,
		&c.SeqToken,
	}
}

func populateEnv(m *configValue) (err error) {
	v := os.Getenv(m.envVarName)

	if v == "" && m.required {
		if m.errorMessage != "" {
			return errors.New(m.errorMessage)
		}

		return fmt.Errorf("environment variable %s is not set", m.envVarName)
	}

	if v == "" {
		v = m.defaultValue
	}

	m.Value = v
	return nil
}

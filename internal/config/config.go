// Package config loads service configuration from the environment.
package config

import (
	"github.com/spf13/viper"

	"github.com/marwick/garmin-insights-go/internal/core"
)

// Config holds everything the service reads from its environment.
// Credentials are not validated at load time: the session manager checks
// them lazily on first use, so the server starts even without credentials
// and only fails once data is actually requested.
type Config struct {
	Server ServerConfig
	Garmin GarminConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  int // Seconds
	WriteTimeout int // Seconds
}

type GarminConfig struct {
	Email    string
	Password string
	BaseURL  string
	TokenDir string
	Timezone string
	Verbose  bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("INSIGHTS")

	setDefaults(v)
	bindEnvVars(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Garmin.TokenDir == "" {
		cfg.Garmin.TokenDir = core.TokenDir()
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)

	v.SetDefault("garmin.baseURL", core.APIBaseURL)
	v.SetDefault("garmin.timezone", core.DefaultTZ)
	v.SetDefault("garmin.verbose", false)
}

func bindEnvVars(v *viper.Viper) {
	// Credentials keep the env var names the original tooling documents.
	v.BindEnv("garmin.email", core.EmailEnvVar)
	v.BindEnv("garmin.password", core.PasswordEnvVar)
	v.BindEnv("garmin.tokenDir", core.TokenDirEnvVar)

	v.BindEnv("server.port", "INSIGHTS_PORT")
	v.BindEnv("garmin.baseURL", "INSIGHTS_GARMIN_BASE_URL")
	v.BindEnv("garmin.timezone", "INSIGHTS_TIMEZONE")
	v.BindEnv("garmin.verbose", "INSIGHTS_VERBOSE")
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersionInfo returns a formatted version string
func GetVersionInfo() string {
	return fmt.Sprintf("portfolio-api version %s, commit %s, built at %s", version, commit, date)
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	OAuth    OAuthConfig    `mapstructure:"oauth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LoggingConfig struct {
	Level             string `mapstructure:"level"`
	Format            string `mapstructure:"format"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

// OAuthConfig holds the Google OAuth client settings. All fields are
// required; the process refuses to start without them.
type OAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
	AllowedEmail string `mapstructure:"allowed_email"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// InitFlags initializes command line flags (without parsing)
func InitFlags() {
	pflag.String("config-file", "", "Path to the config file")
	// Note: no pflag.Parse() here as it's called in main.go
}

func Load() (*Config, error) {
	viper.Reset() // Ensure clean state

	viper.SetEnvPrefix("PORTFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	setDefaults()

	if cfgFile := viper.GetString("config-file"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/portfolio-api")
	}

	// The config file is optional; everything can come from the environment.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	// Required keys default to empty so AutomaticEnv can fill them in
	// without a config file; validate() rejects the empty values.
	viper.SetDefault("oauth.client_id", "")
	viper.SetDefault("oauth.client_secret", "")
	viper.SetDefault("oauth.redirect_url", "")
	viper.SetDefault("oauth.allowed_email", "")
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("database.url", "")
}

// validate fails fast on missing required settings so the process never
// serves requests that can only fail at first use.
func (c *Config) validate() error {
	required := []struct {
		value string
		key   string
	}{
		{c.OAuth.ClientID, "oauth.client_id"},
		{c.OAuth.ClientSecret, "oauth.client_secret"},
		{c.OAuth.RedirectURL, "oauth.redirect_url"},
		{c.OAuth.AllowedEmail, "oauth.allowed_email"},
		{c.JWT.Secret, "jwt.secret"},
		{c.Database.URL, "database.url"},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s (set via config file or PORTFOLIO_* environment variables)", strings.Join(missing, ", "))
	}
	return nil
}

// Module provides the configuration dependencies
var Module = fx.Module("config",
	fx.Provide(Load),
)

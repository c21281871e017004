package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

var (
	errMissingJWTSigningKey = errors.New("api.jwt_signing_key is required")
	errInvalidEnvironment   = errors.New("api.environment must be development, production or test")
	errInvalidJWTTTL        = errors.New("api.jwt_ttl must be longer than api.token_refresh_interval")
)

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Postgres  *PostgresConfig  `mapstructure:"postgres"`
	PageViews *PageViewsConfig `mapstructure:"page_views"`
}

type APIConfig struct {
	Environment          string        `mapstructure:"environment"`
	Port                 string        `mapstructure:"port"`
	BaseURL              string        `mapstructure:"base_url"`
	JWTSigningKey        string        `mapstructure:"jwt_signing_key"`
	JWTTTL               time.Duration `mapstructure:"jwt_ttl"`
	TokenRefreshInterval time.Duration `mapstructure:"token_refresh_interval"`
	AuthCookieName       string        `mapstructure:"auth_cookie_name"`
	AllowedCORSDomains   []string      `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type PageViewsConfig struct {
	FlushSchedule string `mapstructure:"flush_schedule"`
}

// setDefaults registers every key so AutomaticEnv can override keys that are
// absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", EnvDevelopment)
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.jwt_ttl", 24*time.Hour)
	v.SetDefault("api.token_refresh_interval", 10*time.Minute)
	v.SetDefault("api.auth_cookie_name", "token")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "")
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("page_views.flush_schedule", "@every 30s")
}

// Load reads the YAML file at path. Environment variables override it, with
// dots replaced by underscores (API_PORT overrides api.port).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		// Listeners are wired at startup; edits only take effect on restart.
		zap.L().Info("config file changed, restart to apply",
			zap.String("file", e.Name),
			zap.String("op", e.Op.String()),
		)
	})
	v.WatchConfig()

	return conf, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	switch c.API.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return errInvalidEnvironment
	}

	if c.API.JWTSigningKey == "" {
		return errMissingJWTSigningKey
	}
	if c.API.JWTTTL <= c.API.TokenRefreshInterval {
		return errInvalidJWTTTL
	}

	return nil
}

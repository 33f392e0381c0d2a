package utils

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	AppURL           string `yaml:"APP_URL"`
	LogLevel         string `yaml:"LOG_LEVEL"`
	AccessLogFile    string `yaml:"ACCESS_LOG_FILE"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver     string `yaml:"DB_DRIVER"`
	DBUser       string `yaml:"DB_USER"`
	DBName       string `yaml:"DB_NAME"`
	DBPassword   string `yaml:"DB_PASSWORD"`
	DBPort       string `yaml:"DB_PORT"`
	DBHost       string `yaml:"DB_HOST"`
	DBSSLMode    string `yaml:"DB_SSLMODE"`
	DBSQLitePath string `yaml:"DB_SQLITE_PATH"`
	DBLogLevel   string `yaml:"DB_LOG_LEVEL"`

	// Session configuration
	SessionSecret   string `yaml:"SESSION_SECRET"`
	SessionTTLHours int    `yaml:"SESSION_TTL_HOURS"`
	SessionMaxItems int    `yaml:"SESSION_MAX_ITEMS"`
	CookieSecure    bool   `yaml:"COOKIE_SECURE"`

	// Redis configuration, sessions are kept in process when empty
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisUser     string `yaml:"REDIS_USER"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	NotifyEmail      string `yaml:"NOTIFY_EMAIL"`
}

func DefaultConfig() Config {
	return Config{
		AppPort:          "8080",
		LogLevel:         "info",
		CORSAllowOrigins: "*",
		RateLimitMax:     10,
		DBDriver:         "postgres",
		DBPort:           "5432",
		DBSSLMode:        "disable",
		DBSQLitePath:     "parthagro.db",
		DBLogLevel:       "warn",
		SessionTTLHours:  24,
		SessionMaxItems:  10000,
		SMTPPort:         "587",
	}
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// LoadConfig reads the yaml file at path (a missing file is not an error),
// loads .env if present and lets environment variables override any key.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return config, errors.Wrap(err, "could not parse config file")
		}
	case !os.IsNotExist(err):
		return config, errors.Wrap(err, "could not read config file")
	}

	_ = godotenv.Load()
	if err := applyEnv(&config); err != nil {
		return config, err
	}

	if config.SessionSecret == "" {
		return config, errors.New("SESSION_SECRET must be set")
	}
	return config, nil
}

// applyEnv sets every field of the struct target points to whose yaml key is
// present in the environment.
func applyEnv(target any) error {
	v := reflect.ValueOf(target).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return errors.Wrapf(err, "invalid value for %s", key)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return errors.Wrapf(err, "invalid value for %s", key)
			}
			field.SetBool(b)
		default:
			return errors.Errorf("%s: unsupported config field kind %s", key, field.Kind())
		}
	}
	return nil
}

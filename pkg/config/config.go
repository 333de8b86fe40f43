package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values that envconfig cannot express on its own.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SUPERCOMPARE_APP_ENV" default:"dev" validate:"required"`
	Port         string `envconfig:"SUPERCOMPARE_APP_PORT" default:"3000" validate:"required,numeric"`
	LogLevel     string `envconfig:"SUPERCOMPARE_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"SUPERCOMPARE_LOG_FORMAT" default:"json" validate:"oneof=json console"`
	LogWarnStack bool   `envconfig:"SUPERCOMPARE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout     time.Duration `envconfig:"SUPERCOMPARE_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SUPERCOMPARE_SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SUPERCOMPARE_SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	DSN    string `envconfig:"SUPERCOMPARE_DB_DSN" validate:"required"`
	Driver string `envconfig:"SUPERCOMPARE_DB_DRIVER" default:"postgres" validate:"oneof=postgres sqlite"`

	LegacyHost     string `envconfig:"SUPERCOMPARE_DB_HOST"`
	LegacyPort     int    `envconfig:"SUPERCOMPARE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SUPERCOMPARE_DB_USER"`
	LegacyPassword string `envconfig:"SUPERCOMPARE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SUPERCOMPARE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SUPERCOMPARE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SUPERCOMPARE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SUPERCOMPARE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SUPERCOMPARE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SUPERCOMPARE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the store is the embedded SQLite driver.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SUPERCOMPARE_CORS_ALLOWED_ORIGINS" default:"https://sc.madoga.dev,http://localhost:5173" validate:"required,dive,url"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SUPERCOMPARE_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SUPERCOMPARE_METRICS_PATH" default:"/metrics" validate:"startswith=/"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		db.DSN = defaultSQLiteDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

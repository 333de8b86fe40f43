package config

const (
	EnvPrefix = "SUPERCOMPARE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	defaultSQLiteDSN = "file:supercompare.db?cache=shared"
)

const (
	EnvAppEnv      = "SUPERCOMPARE_APP_ENV"
	EnvPort        = "SUPERCOMPARE_APP_PORT"
	EnvLogLevel    = "SUPERCOMPARE_LOG_LEVEL"
	EnvLogFormat   = "SUPERCOMPARE_LOG_FORMAT"
	EnvDBDSN       = "SUPERCOMPARE_DB_DSN"
	EnvDBDriver    = "SUPERCOMPARE_DB_DRIVER"
	EnvDBHost      = "SUPERCOMPARE_DB_HOST"
	EnvDBPort      = "SUPERCOMPARE_DB_PORT"
	EnvDBUser      = "SUPERCOMPARE_DB_USER"
	EnvDBPassword  = "SUPERCOMPARE_DB_PASSWORD"
	EnvDBName      = "SUPERCOMPARE_DB_NAME"
	EnvCORSOrigins = "SUPERCOMPARE_CORS_ALLOWED_ORIGINS"
	EnvMetricsPath = "SUPERCOMPARE_METRICS_PATH"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

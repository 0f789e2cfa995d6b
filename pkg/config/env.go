package config

// EnvPrefix is the envconfig prefix shared by every service binary.
const EnvPrefix = "teruza"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "TERUZA_DB_DSN"
	EnvDBHost = "TERUZA_DB_HOST"
	EnvDBUser = "TERUZA_DB_USER"
	EnvDBName = "TERUZA_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

package config

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultEnvironment = "dev"
	DefaultServiceName = "pitchside"
	DefaultVersion     = "dev"
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "text"

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "pitchside"

	DefaultCatalogSeedPath = "configs/catalog/catalog.json"
)

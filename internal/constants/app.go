package constants

// Application information
const (
	AppName    = "findme-api"
	AppVersion = "1.0.0"
)

// Environment types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default application settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

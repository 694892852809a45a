// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally overlaid by a
// .env file via godotenv. Defaults are declared as struct tags on the partial
// config types (server, storage, log, database, auth) and registered in Viper
// through reflection, so SERVER_PORT=9090 overrides server.port without any
// per-key wiring.
package config

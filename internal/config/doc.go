// Package config manages application configuration for the volunteer CLI.
//
// Configuration is read with viper from an optional TOML file and from
// environment variables, then validated with go-playground/validator.
//
// # Configuration Loading
//
//	cfg, err := config.Load("volunteer.toml") // or "" for env and defaults only
//
// # Configuration Groups
//
//   - LogConfig: level and output format of the slog logger
//   - MatchingConfig: name of the matching strategy
//   - MetricsConfig: Prometheus application observer toggle
//   - SeedConfig: default seed file
//
// # Environment Variables
//
//	VOLUNTEER_LOG_LEVEL          - debug, info, warn or error (default: info)
//	VOLUNTEER_LOG_FORMAT         - json or text (default: text)
//	VOLUNTEER_MATCHING_STRATEGY  - matching strategy (default: interest)
//	VOLUNTEER_METRICS_ENABLED    - record application metrics (default: false)
//	VOLUNTEER_SEED_PATH          - seed file used when none is given
//
// # Config File
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[matching]
//	strategy = "interest"
package config

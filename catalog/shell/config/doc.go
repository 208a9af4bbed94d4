// Package config loads the runtime configuration of the library catalog and builds what it describes:
// the logger, the Postgres connection pools and the record store engine.
//
// Values are resolved in this order: defaults, the YAML config file, environment variables.
// The command line front end applies its flags on top.
package config

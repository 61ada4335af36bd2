// Package config loads cmd/pcsched's runtime configuration from flags, an
// optional pcsched.yaml/json file, and PCSCHED_-prefixed environment
// variables. Viper's own precedence applies: an explicitly set flag wins
// over the environment, which wins over the config file, which wins over
// the defaults set here.
package config

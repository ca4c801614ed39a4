// Package config provides configuration loading for the LCOE report
// generator.
//
// Configuration is resolved in three layers: code defaults, an optional
// YAML config file, and LCOE_-prefixed environment variables, with later
// layers taking precedence. Callers validate the resolved configuration
// once all of their own overrides are applied, so a bad value fails the
// run up front rather than partway through report generation.
package config

// Package config loads the termination defaults from multiple sources (YAML
// files, environment variables, CLI flags) with precedence: CLI flags > YAML
// config > Environment variables > Defaults. Only the fields some source sets
// are forwarded, so unset fields keep the store's built-in values.
package config

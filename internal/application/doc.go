// Package application provides dependency wiring. It creates the defaults
// store from loaded configuration, wraps the logger in a sink and binds both
// to a terminator, keeping the main package focused on CLI parsing.
package application

//go:build !js

package host

const exitSupported = true

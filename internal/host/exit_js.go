//go:build js

package host

// Browser hosts have no process status to report.
const exitSupported = false

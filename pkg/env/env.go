// Package env reads environment variables with fallbacks, for the few
// values needed before the full config loads.
package env

import "os"

// Get returns the named environment variable, or fallback when unset.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package env

import "os"

// Get returns the value of the given environment variable or a fallback.
// Used where a CAFEKIOSK_* variable has a plainer legacy alias.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

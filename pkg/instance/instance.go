package instance

import "os"

// GetID returns the process instance identifier: the platform dyno name when
// set, otherwise the host name, otherwise "local".
func GetID() string {
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}

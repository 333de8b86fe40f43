package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// OptionalPositiveInt reads key as a positive integer. Missing, non-numeric or
// non-positive values yield nil.
func OptionalPositiveInt(r *http.Request, key string) *int {
	value, ok := parsePositive(r.URL.Query().Get(key))
	if !ok {
		return nil
	}
	return &value
}

// PositiveIntOrDefault reads key as a positive integer, falling back to
// defaultVal for anything else.
func PositiveIntOrDefault(r *http.Request, key string, defaultVal int) int {
	if value, ok := parsePositive(r.URL.Query().Get(key)); ok {
		return value
	}
	return defaultVal
}

// Flag reports whether key is exactly "true".
func Flag(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}

// ParsePathID parses a numeric path identifier.
func ParsePathID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parsePositive(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

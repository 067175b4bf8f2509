package model

import (
	"net/url"
	"strings"
	"time"
)

type DatabaseStatus struct {
	Connected    bool
	Target       string
	Latency      time.Duration
	CheckedAt    time.Time
	BreakerState string
	Error        string
}

// DatabaseTarget strips credentials from a connection URL, keeping host, port and database.
func DatabaseTarget(dsn string) string {
	if dsn == "" {
		return ""
	}

	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		if _, after, ok := strings.Cut(dsn, "@"); ok {
			return after
		}

		return "unknown"
	}

	return u.Host + u.Path
}

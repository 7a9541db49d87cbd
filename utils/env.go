package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvOrDefault returns the trimmed ENV value or def when unset/blank.
func EnvOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func EnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(EnvOrDefault(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

func EnvInt(key string, def int) int {
	v, err := strconv.Atoi(EnvOrDefault(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// EnvDuration accepts Go duration strings ("30s", "5m").
func EnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(EnvOrDefault(key, def.String()))
	if err != nil {
		return def
	}
	return v
}

// SplitList splits a comma separated value and drops blank entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

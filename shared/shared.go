package shared

import (
	"strings"
)

// BuildCacheKey joins a prefix and its qualifiers into a single cache key,
// e.g. BuildCacheKey("limiter", ip, ua) -> "limiter:10.0.0.1:curl".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

package shared

import (
	"strings"
)

// BuildCacheKey joins key segments with the conventional colon separator.
func BuildCacheKey(segments ...string) string {
	return strings.Join(segments, ":")
}

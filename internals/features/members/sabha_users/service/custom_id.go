// Custom-ID allocation for sabha users. IDs are per-mandal sequences built
// from the mandal initials: AB1, AB2, ... The allocator scans existing IDs
// rather than keeping a counter row, so concurrent creates are serialized by
// the unique index on sabha_user_custom_id plus a retry loop in the caller.
package service

import (
	"strconv"
	"strings"
)

// NextCustomID returns initials + (max numeric suffix + 1) over the existing
// IDs of the same group. IDs whose suffix does not parse as an integer are
// skipped instead of failing the whole scan. An empty group starts at 1.
func NextCustomID(initials string, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, initials) {
			continue
		}
		n, err := strconv.Atoi(id[len(initials):])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return initials + strconv.Itoa(max+1)
}

// SuffixOf parses the numeric part of a custom ID for the given initials.
// Returns ok=false when the ID belongs to another group or has a malformed
// suffix.
func SuffixOf(initials, customID string) (int, bool) {
	if !strings.HasPrefix(customID, initials) {
		return 0, false
	}
	n, err := strconv.Atoi(customID[len(initials):])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

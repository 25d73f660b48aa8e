package appstate

import "time"

// NoExpiry keeps stored state until it is explicitly deleted.
const NoExpiry time.Duration = 0

// DemoStateTTL bounds how long state built from the demo message set is kept.
const DemoStateTTL = 24 * time.Hour

// expiresAt converts a ttl into the stored expires_at value (0 = never)
func expiresAt(now time.Time, ttl time.Duration) int64 {
	if ttl <= NoExpiry {
		return 0
	}
	return now.Add(ttl).Unix()
}

package redisx

import (
	"fmt"
	"time"
)

const (
	// Prefix snapshot mirror: smartpos:pos_{collection} -> JSON array
	MirrorPrefix = "smartpos:"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLDedup = 48 * time.Hour
)

func DedupKey(service, eventID string) string { return fmt.Sprintf(KeyDedup, service, eventID) }

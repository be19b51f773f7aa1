package consignment

import "time"

// TrackingEvent is one scan or status update for a tracking number. Events
// are stored best-effort when a track request succeeds; a nil consignment
// association means the tracking number was not resolvable to a local row.
type TrackingEvent struct {
	Timestamp   time.Time `json:"ts"`
	Description string    `json:"desc"`
}

package events

import (
	"time"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventItemReported  EventType = "item_reported"
	EventItemCollected EventType = "item_collected"
	EventItemsArchived EventType = "items_archived"
)

// Actor encapsulates actor metadata for an event. System events (the
// sweep) carry no profile id.
type Actor struct {
	ProfileID *string `json:"profile_id,omitempty"`
	System    bool    `json:"system,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ItemReportedPayload payload.
type ItemReportedPayload struct {
	ItemID        string `json:"item_id"`
	Description   string `json:"description"`
	FoundLocation string `json:"found_location"`
	HasImage      bool   `json:"has_image"`
}

// ItemCollectedPayload payload.
type ItemCollectedPayload struct {
	ItemID      string    `json:"item_id"`
	CollectedAt time.Time `json:"collected_at"`
}

// ItemsArchivedPayload payload.
type ItemsArchivedPayload struct {
	Count  int64     `json:"count"`
	Cutoff time.Time `json:"cutoff"`
}

// ProfileActor builds an actor for a staff profile.
func ProfileActor(profile *domain.Profile) Actor {
	if profile == nil {
		return Actor{System: true}
	}
	id := profile.ID
	return Actor{ProfileID: &id}
}

// SystemActor identifies the scheduled sweep.
func SystemActor() Actor {
	return Actor{System: true}
}

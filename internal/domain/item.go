package domain

import "time"

// ItemStatus enumerates lifecycle states for lost items.
type ItemStatus string

const (
	ItemStatusActive    ItemStatus = "active"
	ItemStatusCollected ItemStatus = "collected"
	ItemStatusArchived  ItemStatus = "archived"
)

// Valid reports whether the status is one of the three known states.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusActive, ItemStatusCollected, ItemStatusArchived:
		return true
	}
	return false
}

// Item is the aggregate for a reported lost object.
//
// Status moves one-way: active -> collected (staff action) or
// active -> archived (sweep). CollectedAt is set iff the status is
// collected, ArchivedAt iff archived; never both.
type Item struct {
	ID              string
	Description     string
	FoundLocation   string
	CollectLocation string
	ImageKey        *string
	ImageURL        *string
	Status          ItemStatus
	UploadedBy      string
	CreatedAt       time.Time
	CollectedAt     *time.Time
	ArchivedAt      *time.Time
}

// AnnotatedItem is an item decorated with its uploader's display name
// for public listings.
type AnnotatedItem struct {
	Item
	UploaderName string
}

// MonthlyCount is one aggregation bucket keyed by "YYYY-MM".
type MonthlyCount struct {
	Month string
	Count int
}

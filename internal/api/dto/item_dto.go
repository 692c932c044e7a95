package dto

import (
	"time"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

// AddItemRequest payload for reporting a found object.
type AddItemRequest struct {
	Description     string  `json:"description"`
	FoundLocation   string  `json:"found_location"`
	CollectLocation string  `json:"collect_location"`
	ImageKey        *string `json:"image_key,omitempty"`
}

// ItemResponse is the wire shape of a lost item.
type ItemResponse struct {
	ID              string            `json:"id"`
	Description     string            `json:"description"`
	FoundLocation   string            `json:"found_location"`
	CollectLocation string            `json:"collect_location"`
	ImageURL        *string           `json:"image_url,omitempty"`
	Status          domain.ItemStatus `json:"status"`
	UploadedBy      string            `json:"uploaded_by"`
	UploaderName    string            `json:"uploader_name,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	CollectedAt     *time.Time        `json:"collected_at,omitempty"`
	ArchivedAt      *time.Time        `json:"archived_at,omitempty"`
}

// MonthlyCountResponse is one aggregation bucket.
type MonthlyCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// FromItem maps a domain item.
func FromItem(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID,
		Description:     item.Description,
		FoundLocation:   item.FoundLocation,
		CollectLocation: item.CollectLocation,
		ImageURL:        item.ImageURL,
		Status:          item.Status,
		UploadedBy:      item.UploadedBy,
		CreatedAt:       item.CreatedAt,
		CollectedAt:     item.CollectedAt,
		ArchivedAt:      item.ArchivedAt,
	}
}

// FromAnnotatedItem maps an annotated item.
func FromAnnotatedItem(item domain.AnnotatedItem) ItemResponse {
	resp := FromItem(item.Item)
	resp.UploaderName = item.UploaderName
	return resp
}

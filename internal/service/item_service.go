package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/campus-kit/lostfound-service/internal/domain"
	"github.com/campus-kit/lostfound-service/internal/events"
	"github.com/campus-kit/lostfound-service/internal/repository"
	"github.com/campus-kit/lostfound-service/internal/storage"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// unknownUploader is the placeholder when an item's uploader profile
// cannot be resolved. A broken reference never fails the listing.
const unknownUploader = "Unknown"

// ItemService coordinates the lost item lifecycle.
type ItemService struct {
	items      repository.ItemRepository
	profiles   repository.ProfileRepository
	resolver   storage.ImageResolver
	dispatcher events.Dispatcher
	stats      *StatsService
	logger     *zap.Logger
	now        func() time.Time
}

// ItemDependencies bundles collaborators for the item service.
type ItemDependencies struct {
	ItemRepo    repository.ItemRepository
	ProfileRepo repository.ProfileRepository
	Resolver    storage.ImageResolver
	Dispatcher  events.Dispatcher
	Stats       *StatsService
	Logger      *zap.Logger
	Now         func() time.Time
}

// AddItemInput describes the item creation payload.
type AddItemInput struct {
	Description     string
	FoundLocation   string
	CollectLocation string
	ImageKey        *string
}

// NewItemService constructs the service.
func NewItemService(deps ItemDependencies) *ItemService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{
		items:      deps.ItemRepo,
		profiles:   deps.ProfileRepo,
		resolver:   deps.Resolver,
		dispatcher: deps.Dispatcher,
		stats:      deps.Stats,
		logger:     logger,
		now:        now,
	}
}

// ListByStatus returns all items in the given state, newest first, each
// annotated with its uploader's display name.
func (s *ItemService) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.AnnotatedItem, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown item status", map[string]any{"status": string(status)})
	}

	items, err := s.items.ListByStatus(ctx, status)
	if err != nil {
		return nil, apperrors.NewOperationFailed(err)
	}

	annotated := make([]domain.AnnotatedItem, 0, len(items))
	for _, item := range items {
		name := unknownUploader
		if profile, err := s.profiles.GetByID(ctx, item.UploadedBy); err == nil && profile != nil {
			name = profile.Name
		}
		annotated = append(annotated, domain.AnnotatedItem{Item: item, UploaderName: name})
	}
	return annotated, nil
}

// ListMine returns the caller's own uploads, newest first. A caller
// without a teacher profile gets an empty list, not an error.
func (s *ItemService) ListMine(ctx context.Context, profile *domain.Profile) ([]domain.Item, error) {
	if !profile.IsTeacher() {
		return []domain.Item{}, nil
	}
	items, err := s.items.ListByUploader(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.NewOperationFailed(err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// Add creates a new active item on behalf of a teacher.
func (s *ItemService) Add(ctx context.Context, profile *domain.Profile, input AddItemInput) (string, error) {
	if !profile.IsTeacher() {
		return "", apperrors.NewForbidden("only teachers can add lost items")
	}

	item := &domain.Item{
		Description:     strings.TrimSpace(input.Description),
		FoundLocation:   strings.TrimSpace(input.FoundLocation),
		CollectLocation: strings.TrimSpace(input.CollectLocation),
		ImageKey:        input.ImageKey,
		Status:          domain.ItemStatusActive,
		UploadedBy:      profile.ID,
	}

	if input.ImageKey != nil && s.resolver != nil {
		url, err := s.resolver.ResolveURL(ctx, *input.ImageKey)
		if err != nil {
			// A dangling image reference degrades to no URL.
			s.logger.Warn("image url resolution failed",
				zap.String("image_key", *input.ImageKey), zap.Error(err))
		} else {
			item.ImageURL = &url
		}
	}

	if err := s.items.Create(ctx, item); err != nil {
		return "", apperrors.NewOperationFailed(err)
	}

	s.stats.Invalidate(ctx)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventItemReported,
		Actor: events.ProfileActor(profile),
		Payload: events.ItemReportedPayload{
			ItemID:        item.ID,
			Description:   item.Description,
			FoundLocation: item.FoundLocation,
			HasImage:      item.ImageKey != nil,
		},
	})
	return item.ID, nil
}

// MarkCollected flips an active item to collected and stamps the
// collection time. First write wins: a repeat call, or a call that
// loses the race against the archival sweep, is rejected with a
// conflict.
func (s *ItemService) MarkCollected(ctx context.Context, profile *domain.Profile, itemID string) error {
	if !profile.IsTeacher() {
		return apperrors.NewForbidden("only teachers can mark items as collected")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("item", map[string]any{"id": itemID})
		}
		return apperrors.NewOperationFailed(err)
	}
	if item.Status != domain.ItemStatusActive {
		return apperrors.NewConflict("item is not active", map[string]any{
			"id":     itemID,
			"status": string(item.Status),
		})
	}

	collectedAt := s.now()
	ok, err := s.items.MarkCollected(ctx, itemID, collectedAt)
	if err != nil {
		return apperrors.NewOperationFailed(err)
	}
	if !ok {
		// Lost the race between the read above and the conditional write.
		return apperrors.NewConflict("item is not active", map[string]any{"id": itemID})
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventItemCollected,
		Actor: events.ProfileActor(profile),
		Payload: events.ItemCollectedPayload{
			ItemID:      itemID,
			CollectedAt: collectedAt,
		},
	})
	return nil
}

func (s *ItemService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-kit/lostfound-service/internal/events"
)

// NotificationService surfaces item lifecycle events in the logs. A
// real deployment would fan these out to campus notice boards or mail.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventItemReported, n.handleItemReported)
	n.dispatcher.Subscribe(events.EventItemCollected, n.handleItemCollected)
	n.dispatcher.Subscribe(events.EventItemsArchived, n.handleItemsArchived)
}

func (n *NotificationService) handleItemReported(_ context.Context, event events.Event) error {
	n.logger.Info("ItemReported", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleItemCollected(_ context.Context, event events.Event) error {
	n.logger.Info("ItemCollected", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleItemsArchived(_ context.Context, event events.Event) error {
	n.logger.Info("ItemsArchived", zap.Any("payload", event.Payload))
	return nil
}

package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/lostfound-service/internal/service"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// SweepHandler exposes an operational trigger for the archival sweep.
// The scheduled worker is the normal driver; this endpoint exists for
// platform cron integrations and incident recovery.
type SweepHandler struct {
	sweep       *service.SweepService
	internalKey string
}

// NewSweepHandler constructs handler.
func NewSweepHandler(sweepService *service.SweepService, internalKey string) *SweepHandler {
	return &SweepHandler{sweep: sweepService, internalKey: internalKey}
}

// Run handles POST /internal/sweep.
func (h *SweepHandler) Run(c *fiber.Ctx) error {
	if h.internalKey == "" {
		return apperrors.NewForbidden("sweep endpoint disabled")
	}
	provided := c.Get("X-Internal-Key")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.internalKey)) != 1 {
		return apperrors.NewForbidden("invalid internal key")
	}

	count, err := h.sweep.ArchiveStale(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"archived": count},
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/lostfound-service/internal/api/dto"
	"github.com/campus-kit/lostfound-service/internal/service"
)

// StatsHandler exposes reporting endpoints.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: statsService}
}

// Monthly handles GET /stats/monthly.
func (h *StatsHandler) Monthly(c *fiber.Ctx) error {
	counts, err := h.stats.MonthlyCounts(c.Context())
	if err != nil {
		return err
	}
	result := make([]dto.MonthlyCountResponse, 0, len(counts))
	for _, bucket := range counts {
		result = append(result, dto.MonthlyCountResponse{Month: bucket.Month, Count: bucket.Count})
	}
	return c.JSON(fiber.Map{"data": result})
}

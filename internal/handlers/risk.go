package handlers

import (
	"riskdesk/internal/services/risk"
	"riskdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type RiskHandler struct {
	riskService risk.Service
}

func NewRiskHandler(riskService risk.Service) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

// GetMetrics returns the full risk overview.
func (h *RiskHandler) GetMetrics(c *fiber.Ctx) error {
	overview, err := h.riskService.Overview(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to compute risk metrics")
	}
	return utils.Success(c, overview)
}

// GetDistribution returns the four-bucket score distribution.
func (h *RiskHandler) GetDistribution(c *fiber.Ctx) error {
	overview, err := h.riskService.Overview(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to compute risk distribution")
	}
	return utils.Success(c, overview.Distribution)
}

// GetServiceMetrics returns the per-channel aggregates.
func (h *RiskHandler) GetServiceMetrics(c *fiber.Ctx) error {
	overview, err := h.riskService.Overview(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to compute service metrics")
	}
	return utils.Success(c, fiber.Map{"services": overview.Services})
}

// GetServiceUsage returns the eight-way usage breakdown.
func (h *RiskHandler) GetServiceUsage(c *fiber.Ctx) error {
	overview, err := h.riskService.Overview(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to compute service usage")
	}
	return utils.Success(c, fiber.Map{"usage_distribution": overview.UsageDistribution})
}

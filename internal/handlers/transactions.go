package handlers

import (
	"riskdesk/internal/services/transactions"
	"riskdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	txService transactions.Service
}

func NewTransactionHandler(txService transactions.Service) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// ListTransactions applies the compound filter from the query string and
// returns the filtered rows plus the stable per-category summary.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	filter := transactions.Filter{
		Search:          c.Query("search"),
		Status:          c.Query("status", transactions.FilterAll),
		Type:            c.Query("type", transactions.FilterAll),
		ServiceCategory: c.Query("category", transactions.FilterAll),
		Tab:             c.Query("tab", transactions.FilterAll),
	}

	result, err := h.txService.List(c.Context(), filter)
	if err != nil {
		return utils.InternalError(c, "Failed to load transactions")
	}
	return utils.Success(c, result)
}

// GetSummary returns the per-category counts and volumes over the full
// collection.
func (h *TransactionHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.txService.Summary(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to load transaction summary")
	}
	return utils.Success(c, summary)
}

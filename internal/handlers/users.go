package handlers

import (
	"errors"

	"riskdesk/internal/repositories"
	"riskdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userRepo repositories.UserRepository
	txRepo   repositories.TransactionRepository
}

func NewUserHandler(userRepo repositories.UserRepository, txRepo repositories.TransactionRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, txRepo: txRepo}
}

// ListUsers returns every risk/KYC subject.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to load users")
	}
	return utils.Success(c, fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// GetUser returns a single subject with their transactions.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to load user")
	}

	txs, err := h.txRepo.ListByUser(c.Context(), id)
	if err != nil {
		return utils.InternalError(c, "Failed to load user transactions")
	}

	return utils.Success(c, fiber.Map{
		"user":         user,
		"transactions": txs,
	})
}

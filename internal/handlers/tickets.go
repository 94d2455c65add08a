package handlers

import (
	"strconv"

	"riskdesk/internal/services/ticketing"
	"riskdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TicketHandler struct {
	gateway *ticketing.Gateway
}

func NewTicketHandler(gateway *ticketing.Gateway) *TicketHandler {
	return &TicketHandler{gateway: gateway}
}

// ListTickets returns tickets matching the query filters. The gateway is
// fail-soft, so this always answers 200 with a (possibly empty) list; the
// configured flag tells the client whether an empty list means "no tickets"
// or "not set up yet".
func (h *TicketHandler) ListTickets(c *fiber.Ctx) error {
	groupID, _ := strconv.ParseInt(c.Query("group_id"), 10, 64)
	filter := ticketing.TicketFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		GroupID:  groupID,
		Tag:      c.Query("tag"),
	}

	tickets := h.gateway.ListTickets(c.Context(), filter)
	return utils.Success(c, fiber.Map{
		"tickets":    tickets,
		"total":      len(tickets),
		"configured": h.gateway.Configured(),
	})
}

// GetTicket returns a single ticket.
func (h *TicketHandler) GetTicket(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "Invalid ticket id")
	}

	ticket, ok := h.gateway.GetTicket(c.Context(), id)
	if !ok {
		return utils.NotFound(c, "Ticket not found")
	}
	return utils.Success(c, ticket)
}

// UpdateStatus forwards a status change to the remote system.
func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "Invalid ticket id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	ok := h.gateway.UpdateStatus(c.Context(), id, input.Status)
	return utils.Success(c, fiber.Map{"success": ok})
}

// AddNote forwards a note to the remote system. Empty note text is rejected
// without a network call.
func (h *TicketHandler) AddNote(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "Invalid ticket id")
	}

	var input struct {
		Body    string `json:"body"`
		Private bool   `json:"private"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Body == "" {
		return utils.BadRequest(c, "Note text must not be empty")
	}

	ok := h.gateway.AddNote(c.Context(), id, input.Body, input.Private)
	return utils.Success(c, fiber.Map{"success": ok})
}

// ListGroups returns the remote agent groups, for filter dropdowns.
func (h *TicketHandler) ListGroups(c *fiber.Ctx) error {
	groups := h.gateway.ListGroups(c.Context())
	return utils.Success(c, fiber.Map{"groups": groups})
}

// ListAgents returns the remote agent roster.
func (h *TicketHandler) ListAgents(c *fiber.Ctx) error {
	agents := h.gateway.ListAgents(c.Context())
	return utils.Success(c, fiber.Map{"agents": agents})
}

// Configure installs the ticketing domain and API key at runtime.
func (h *TicketHandler) Configure(c *fiber.Ctx) error {
	var input struct {
		Domain string `json:"domain"`
		APIKey string `json:"api_key"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Domain == "" || input.APIKey == "" {
		return utils.BadRequest(c, "Domain and API key are required")
	}

	h.gateway.Configure(input.Domain, input.APIKey)
	return utils.Success(c, fiber.Map{"configured": true})
}

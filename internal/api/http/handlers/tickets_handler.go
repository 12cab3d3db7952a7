package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-management/internal/api/dto"
	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/service"
	apperrors "github.com/spec-kit/ticket-management/pkg/util/errorutil"
)

// TicketsHandler exposes ticket creation and assignment.
type TicketsHandler struct {
	service *service.TicketService
	now     func() time.Time
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService, now: time.Now}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	priority, ok := domain.ParsePriority(req.Priority)
	if !ok {
		return apperrors.NewValidationError("priority must be one of LOW, MEDIUM, HIGH",
			map[string]any{"priority": req.Priority})
	}
	createdAt := h.now().UTC()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	id, err := h.service.CreateTicket(c.UserContext(), service.CreateTicketInput{
		Title:          req.Title,
		Priority:       priority,
		AssignedTo:     req.AssignedTo,
		Description:    req.Description,
		CreatedAt:      createdAt,
		PayingCustomer: req.PayingCustomer,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CreateTicketResponse{ID: id}})
}

// AssignTicket PUT /tickets/:id/assignee.
func (h *TicketsHandler) AssignTicket(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("ticket id must be an integer", map[string]any{"id": c.Params("id")})
	}
	var req dto.AssignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.AssignTicket(c.UserContext(), id, req.Username); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

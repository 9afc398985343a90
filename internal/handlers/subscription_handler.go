package handlers

import (
	"github.com/contractflow/contractflow/internal/actor"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	subscriptions *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	sub, err := h.subscriptions.Create(actorID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	sub, err := h.subscriptions.Update(actorID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(sub)
}

func (h *SubscriptionHandler) Archive(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.subscriptions.Archive(actorID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Subscription archived successfully"})
}

func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	sub, err := h.subscriptions.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(sub)
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	subs, err := h.subscriptions.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}

package handlers

import (
	"github.com/contractflow/contractflow/internal/actor"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TierHandler struct {
	tiers *services.TierService
}

func NewTierHandler(tiers *services.TierService) *TierHandler {
	return &TierHandler{tiers: tiers}
}

func (h *TierHandler) Create(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTierRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	tier, err := h.tiers.Create(actorID, services.CreateTierInput{
		RateCardID: req.RateCardID,
		MinCalls:   req.MinCalls,
		MaxCalls:   req.MaxCalls,
		UnitPrice:  req.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tier)
}

func (h *TierHandler) Update(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateTierRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	tier, err := h.tiers.Update(actorID, id, services.UpdateTierInput{
		MinCalls:  req.MinCalls,
		MaxCalls:  req.MaxCalls,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tier)
}

func (h *TierHandler) Archive(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.tiers.Archive(actorID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Subscription tier archived successfully"})
}

func (h *TierHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	tier, err := h.tiers.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tier)
}

func (h *TierHandler) List(c *fiber.Ctx) error {
	tiers, err := h.tiers.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tiers)
}

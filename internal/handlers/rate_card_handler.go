package handlers

import (
	"github.com/contractflow/contractflow/internal/actor"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RateCardHandler struct {
	rateCards *services.RateCardService
}

func NewRateCardHandler(rateCards *services.RateCardService) *RateCardHandler {
	return &RateCardHandler{rateCards: rateCards}
}

func (h *RateCardHandler) Create(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateRateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	card, err := h.rateCards.Create(actorID, services.CreateRateCardInput{
		SubscriptionID: req.SubscriptionID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Name:           req.Name,
		Version:        req.Version,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *RateCardHandler) Update(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateRateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	card, err := h.rateCards.Update(actorID, id, services.UpdateRateCardInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Name:      req.Name,
		Version:   req.Version,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(card)
}

func (h *RateCardHandler) Archive(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.rateCards.Archive(actorID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Rate card archived successfully"})
}

func (h *RateCardHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	card, err := h.rateCards.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(card)
}

func (h *RateCardHandler) List(c *fiber.Ctx) error {
	cards, err := h.rateCards.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cards)
}

func (h *RateCardHandler) ListTiers(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	tiers, err := h.rateCards.ListTiers(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tiers)
}

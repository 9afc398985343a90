package handlers

import (
	"github.com/contractflow/contractflow/internal/actor"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContractHandler struct {
	contracts *services.ContractService
}

func NewContractHandler(contracts *services.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) Create(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	contract, err := h.contracts.Create(actorID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(contract)
}

func (h *ContractHandler) Update(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	contract, err := h.contracts.Update(actorID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(contract)
}

func (h *ContractHandler) Archive(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.contracts.Archive(actorID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Contract archived successfully"})
}

func (h *ContractHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	contract, err := h.contracts.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(contract)
}

func (h *ContractHandler) List(c *fiber.Ctx) error {
	contracts, err := h.contracts.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contracts)
}

func (h *ContractHandler) ListSubscriptions(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	subs, err := h.contracts.ListSubscriptions(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(subs)
}

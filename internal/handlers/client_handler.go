package handlers

import (
	"github.com/contractflow/contractflow/internal/actor"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	client, err := h.clients.Create(actorID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	client, err := h.clients.Update(actorID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(client)
}

func (h *ClientHandler) Archive(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.clients.Archive(actorID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Client archived successfully"})
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	client, err := h.clients.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clients.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(clients)
}

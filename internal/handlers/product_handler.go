package handlers

import (
	"github.com/contractflow/contractflow/internal/actor"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	product, err := h.products.Create(actorID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	product, err := h.products.Update(actorID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(product)
}

func (h *ProductHandler) Archive(c *fiber.Ctx) error {
	actorID, err := actor.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.products.Archive(actorID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Product archived successfully"})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

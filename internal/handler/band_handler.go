package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/service"
	"github.com/rockparade/backend/pkg/utils"
)

type BandHandler struct {
	bandService *service.BandService
	validator   *utils.Validator
}

func NewBandHandler(bandService *service.BandService, validator *utils.Validator) *BandHandler {
	return &BandHandler{
		bandService: bandService,
		validator:   validator,
	}
}

func (h *BandHandler) GetBand(c *fiber.Ctx) error {
	band, err := h.bandService.GetBand(c.Params("name"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewResponse(models.ToBandResponse(band)))
}

func (h *BandHandler) ListBands(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	bands, total, err := h.bandService.ListBands(limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(models.NewCollectionResponse(models.ToBandResponses(bands), total, limit, offset))
}

func (h *BandHandler) CreateBand(c *fiber.Ctx) error {
	var req models.BandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	band, err := h.bandService.CreateBand(req, actorLogin(c))
	if err != nil {
		return err
	}

	c.Set("Location", "/api/band/"+band.Name)

	return c.Status(fiber.StatusCreated).JSON(models.NewResponse(models.ToBandResponse(band)))
}

func (h *BandHandler) UpdateBand(c *fiber.Ctx) error {
	var req models.BandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	if err := h.bandService.EditBand(c.Params("name"), actorLogin(c), req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BandHandler) DeleteBand(c *fiber.Ctx) error {
	if err := h.bandService.DeleteBand(c.Params("name"), actorLogin(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BandHandler) AddMember(c *fiber.Ctx) error {
	var req models.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	if err := h.bandService.AddMember(actorLogin(c), req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusCreated)
}

func (h *BandHandler) UpdateMember(c *fiber.Ctx) error {
	var req models.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	if err := h.bandService.UpdateMember(c.Params("name"), actorLogin(c), req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BandHandler) RemoveMember(c *fiber.Ctx) error {
	if err := h.bandService.RemoveMember(c.Params("name"), c.Params("login"), actorLogin(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

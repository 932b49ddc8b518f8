package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/service"
	"github.com/rockparade/backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventService.GetEvent(c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewResponse(models.ToEventResponse(event)))
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	events, total, err := h.eventService.ListEvents(limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(models.NewCollectionResponse(models.ToEventResponses(events), total, limit, offset))
}

func (h *EventHandler) FindEventsLike(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	events, total, err := h.eventService.FindEventsLike(c.Params("searchString"), limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(models.NewCollectionResponse(models.ToEventResponses(events), total, limit, offset))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	event, err := h.eventService.CreateEvent(req, actorLogin(c))
	if err != nil {
		return err
	}

	c.Set("Location", "/api/event/"+event.ID)

	return c.Status(fiber.StatusCreated).JSON(models.NewResponse(models.ToEventResponse(event)))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	if err := h.eventService.EditEvent(c.Params("id"), actorLogin(c), req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.eventService.DeleteEvent(c.Params("id"), actorLogin(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EventHandler) AddImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("No image uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	image, err := h.eventService.AddImage(
		c.Params("id"),
		actorLogin(c),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return err
	}

	return c.JSON(models.NewResponse(models.ToImageResponse(image)))
}

func (h *EventHandler) GetImage(c *fiber.Ctx) error {
	image, content, err := h.eventService.GetImage(c.Params("id"), c.Params("imageName"))
	if err != nil {
		return err
	}

	c.Set("Content-Type", image.MimeType)

	return c.Send(content)
}

func (h *EventHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, err := parseSubResourceID(c.Params("imageId"), "Image")
	if err != nil {
		return err
	}

	if err := h.eventService.DeleteImage(c.Params("id"), imageID, actorLogin(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *EventHandler) AddLinks(c *fiber.Ctx) error {
	var req models.LinksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	links, err := h.eventService.AddLinks(c.Params("id"), actorLogin(c), req)
	if err != nil {
		return err
	}

	responses := make([]models.LinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, models.ToLinkResponse(&links[i]))
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewResponse(responses))
}

func (h *EventHandler) DeleteLink(c *fiber.Ctx) error {
	linkID, err := parseSubResourceID(c.Params("linkId"), "Link")
	if err != nil {
		return err
	}

	if err := h.eventService.DeleteLink(c.Params("id"), linkID, actorLogin(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}

// Malformed numeric sub-resource ids resolve to nothing, so they are
// reported as not found rather than as bad requests.
func parseSubResourceID(raw, resource string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.NewNotFound(resource, raw)
	}
	return uint(id), nil
}

package service

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/repository"
	"github.com/rockparade/backend/pkg/storage"
	"github.com/rockparade/backend/pkg/utils"
)

type EventService struct {
	eventRepo repository.EventRepository
	imageRepo repository.ImageRepository
	linkRepo  repository.LinkRepository
	storage   storage.ImageStorage
	logger    *zap.SugaredLogger
}

func NewEventService(
	eventRepo repository.EventRepository,
	imageRepo repository.ImageRepository,
	linkRepo repository.LinkRepository,
	imageStorage storage.ImageStorage,
	logger *zap.SugaredLogger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		imageRepo: imageRepo,
		linkRepo:  linkRepo,
		storage:   imageStorage,
		logger:    logger,
	}
}

func (s *EventService) CreateEvent(req models.EventRequest, creator string) (*models.Event, error) {
	date, err := time.Parse(models.EventDateLayout, req.Date)
	if err != nil {
		return nil, apperr.NewValidation("Parameter date should have format dd-MM-yyyy HH:mm.")
	}

	links, err := buildLinks(req.Links, nil)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:           utils.GenerateEventID(),
		Name:         req.Name,
		Date:         date,
		Description:  req.Description,
		Place:        req.Place,
		CreatorLogin: creator,
		Links:        links,
	}

	if err := s.eventRepo.Create(event); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation(
				"Event with name \"" + req.Name + "\" and date \"" + req.Date + "\" already exists.")
		}
		return nil, err
	}

	s.logger.Infow("event created", "id", event.ID, "creator", creator)

	return event, nil
}

func (s *EventService) GetEvent(id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Event", id)
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEvents(limit, offset int) ([]models.Event, int64, error) {
	return s.eventRepo.List(limit, offset)
}

func (s *EventService) FindEventsLike(search string, limit, offset int) ([]models.Event, int64, error) {
	return s.eventRepo.FindLike(search, limit, offset)
}

func (s *EventService) EditEvent(id string, actor string, req models.EventRequest) error {
	event, err := s.GetEvent(id)
	if err != nil {
		return err
	}

	if event.CreatorLogin != actor {
		return apperr.NewForbidden("Only event creator can edit event.")
	}

	date, err := time.Parse(models.EventDateLayout, req.Date)
	if err != nil {
		return apperr.NewValidation("Parameter date should have format dd-MM-yyyy HH:mm.")
	}

	event.Name = req.Name
	event.Date = date
	event.Description = req.Description
	event.Place = req.Place

	if err := s.eventRepo.Update(event); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewValidation(
				"Event with name \"" + req.Name + "\" and date \"" + req.Date + "\" already exists.")
		}
		return err
	}

	return nil
}

func (s *EventService) DeleteEvent(id string, actor string) error {
	event, err := s.GetEvent(id)
	if err != nil {
		return err
	}

	if event.CreatorLogin != actor {
		return apperr.NewForbidden("Only event creator can delete event.")
	}

	for _, image := range event.Images {
		if err := s.storage.Delete(image.ObjectKey); err != nil {
			s.logger.Warnw("failed to delete stored image", "key", image.ObjectKey, "error", err)
		}
	}

	if err := s.eventRepo.Delete(event); err != nil {
		return err
	}

	s.logger.Infow("event deleted", "id", id, "actor", actor)

	return nil
}

func (s *EventService) AddImage(eventID, actor, name, mimeType string, content io.Reader) (*models.Image, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatorLogin != actor {
		return nil, apperr.NewForbidden("Only event creator can add images.")
	}

	key := uuid.New().String()
	if err := s.storage.Upload(key, content); err != nil {
		return nil, err
	}

	image := &models.Image{
		EventID:   eventID,
		Name:      name,
		ObjectKey: key,
		MimeType:  mimeType,
	}

	if err := s.imageRepo.Create(image); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation("Image with name \"" + name + "\" already exists.")
		}
		return nil, err
	}

	return image, nil
}

// GetImage returns the image record and its binary content.
func (s *EventService) GetImage(eventID, imageName string) (*models.Image, []byte, error) {
	if _, err := s.GetEvent(eventID); err != nil {
		return nil, nil, err
	}

	image, err := s.imageRepo.GetByName(eventID, imageName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NewNotFound("Image", imageName)
		}
		return nil, nil, err
	}

	content, err := s.storage.Download(image.ObjectKey)
	if err != nil {
		return nil, nil, err
	}

	return image, content, nil
}

func (s *EventService) DeleteImage(eventID string, imageID uint, actor string) error {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return err
	}

	if event.CreatorLogin != actor {
		return apperr.NewForbidden("Only event creator can delete images.")
	}

	image, err := s.imageRepo.GetByID(imageID)
	if err != nil || image.EventID != eventID {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return apperr.NewNotFound("Image", utils.FormatUint(imageID))
	}

	if err := s.storage.Delete(image.ObjectKey); err != nil {
		s.logger.Warnw("failed to delete stored image", "key", image.ObjectKey, "error", err)
	}

	return s.imageRepo.Delete(image)
}

func (s *EventService) AddLinks(eventID, actor string, req models.LinksRequest) ([]models.Link, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatorLogin != actor {
		return nil, apperr.NewForbidden("Only event creator can add links.")
	}

	links, err := buildLinks(req.Links, event.Links)
	if err != nil {
		return nil, err
	}
	for i := range links {
		links[i].EventID = eventID
	}

	if err := s.linkRepo.Create(links); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation("Links must have unique url")
		}
		return nil, err
	}

	return links, nil
}

func (s *EventService) DeleteLink(eventID string, linkID uint, actor string) error {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return err
	}

	if event.CreatorLogin != actor {
		return apperr.NewForbidden("Only event creator can delete links.")
	}

	link, err := s.linkRepo.GetByID(linkID)
	if err != nil || link.EventID != eventID {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return apperr.NewNotFound("Link", utils.FormatUint(linkID))
	}

	return s.linkRepo.Delete(link)
}

// buildLinks checks url uniqueness of the new links against each other and
// against the links already attached to the event.
func buildLinks(requests []models.LinkRequest, existing []models.Link) ([]models.Link, error) {
	seen := make(map[string]bool, len(existing)+len(requests))
	for _, link := range existing {
		seen[link.URL] = true
	}

	links := make([]models.Link, 0, len(requests))
	for _, req := range requests {
		if seen[req.URL] {
			return nil, apperr.NewValidation("Links must have unique url")
		}
		seen[req.URL] = true
		links = append(links, models.Link{
			URL:         req.URL,
			Description: req.Description,
		})
	}

	return links, nil
}

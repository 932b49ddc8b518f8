package service

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
)

// --- Mock repositories ---

type mockEventRepo struct {
	createFn   func(event *models.Event) error
	getByIDFn  func(id string) (*models.Event, error)
	listFn     func(limit, offset int) ([]models.Event, int64, error)
	findLikeFn func(search string, limit, offset int) ([]models.Event, int64, error)
	updateFn   func(event *models.Event) error
	deleteFn   func(event *models.Event) error
}

func (m *mockEventRepo) Create(event *models.Event) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(event)
}

func (m *mockEventRepo) GetByID(id string) (*models.Event, error) {
	return m.getByIDFn(id)
}

func (m *mockEventRepo) List(limit, offset int) ([]models.Event, int64, error) {
	return m.listFn(limit, offset)
}

func (m *mockEventRepo) FindLike(search string, limit, offset int) ([]models.Event, int64, error) {
	return m.findLikeFn(search, limit, offset)
}

func (m *mockEventRepo) Update(event *models.Event) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(event)
}

func (m *mockEventRepo) Delete(event *models.Event) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(event)
}

type mockImageRepo struct {
	createFn    func(image *models.Image) error
	getByIDFn   func(id uint) (*models.Image, error)
	getByNameFn func(eventID, name string) (*models.Image, error)
	deleteFn    func(image *models.Image) error
}

func (m *mockImageRepo) Create(image *models.Image) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(image)
}

func (m *mockImageRepo) GetByID(id uint) (*models.Image, error) {
	return m.getByIDFn(id)
}

func (m *mockImageRepo) GetByName(eventID, name string) (*models.Image, error) {
	return m.getByNameFn(eventID, name)
}

func (m *mockImageRepo) Delete(image *models.Image) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(image)
}

type mockLinkRepo struct {
	createFn  func(links []models.Link) error
	getByIDFn func(id uint) (*models.Link, error)
	deleteFn  func(link *models.Link) error
}

func (m *mockLinkRepo) Create(links []models.Link) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(links)
}

func (m *mockLinkRepo) GetByID(id uint) (*models.Link, error) {
	return m.getByIDFn(id)
}

func (m *mockLinkRepo) Delete(link *models.Link) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(link)
}

type mockStorage struct {
	uploaded  map[string][]byte
	deleted   []string
	deleteErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{uploaded: map[string][]byte{}}
}

func (m *mockStorage) Upload(key string, reader io.Reader) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.uploaded[key] = content
	return nil
}

func (m *mockStorage) Download(key string) ([]byte, error) {
	return m.uploaded[key], nil
}

func (m *mockStorage) Delete(key string) error {
	m.deleted = append(m.deleted, key)
	return m.deleteErr
}

// --- Tests ---

func newEventService(
	eventRepo *mockEventRepo,
	imageRepo *mockImageRepo,
	linkRepo *mockLinkRepo,
	storage *mockStorage,
) *EventService {
	return NewEventService(eventRepo, imageRepo, linkRepo, storage, zap.NewNop().Sugar())
}

func sampleEventRequest() models.EventRequest {
	return models.EventRequest{
		Name:        "Gig",
		Date:        "01-01-2030 20:00",
		Description: "x",
		Place:       "y",
	}
}

func storedEvent() *models.Event {
	return &models.Event{
		ID:           "abcd1234",
		Name:         "Gig",
		Date:         time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC),
		Description:  "x",
		Place:        "y",
		CreatorLogin: "bander",
	}
}

func TestCreateEvent_GeneratesEightCharID(t *testing.T) {
	var persisted *models.Event
	repo := &mockEventRepo{
		createFn: func(event *models.Event) error {
			persisted = event
			return nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	event, err := svc.CreateEvent(sampleEventRequest(), "bander")

	assert.NoError(t, err)
	assert.Len(t, event.ID, 8)
	assert.Equal(t, "bander", event.CreatorLogin)
	assert.Equal(t, 2030, event.Date.Year())
	assert.Same(t, event, persisted)
}

func TestCreateEvent_DuplicateDateAndName(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(event *models.Event) error {
			return gorm.ErrDuplicatedKey
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	_, err := svc.CreateEvent(sampleEventRequest(), "bander")

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages[0], "already exists")
}

func TestCreateEvent_DuplicateLinkURLs(t *testing.T) {
	svc := newEventService(&mockEventRepo{}, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	req := sampleEventRequest()
	req.Links = []models.LinkRequest{
		{URL: "http://example.com"},
		{URL: "http://example.com"},
	}

	_, err := svc.CreateEvent(req, "bander")

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Links must have unique url"}, validationErr.Messages)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	_, err := svc.GetEvent("zzzzzzzz")

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Event \"zzzzzzzz\" was not found.", err.Error())
}

func TestEditEvent_OnlyCreatorCanEdit(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	err := svc.EditEvent("abcd1234", "intruder", sampleEventRequest())

	var forbiddenErr *apperr.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	assert.Equal(t, "Only event creator can edit event.", err.Error())
}

func TestEditEvent_UpdatesFields(t *testing.T) {
	var updated *models.Event
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
		updateFn: func(event *models.Event) error {
			updated = event
			return nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	req := sampleEventRequest()
	req.Name = "Renamed Gig"

	err := svc.EditEvent("abcd1234", "bander", req)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed Gig", updated.Name)
	assert.Equal(t, "abcd1234", updated.ID)
}

func TestDeleteEvent_OnlyCreatorCanDelete(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	err := svc.DeleteEvent("abcd1234", "intruder")

	var forbiddenErr *apperr.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	assert.Equal(t, "Only event creator can delete event.", err.Error())
}

func TestDeleteEvent_RemovesStoredImages(t *testing.T) {
	event := storedEvent()
	event.Images = []models.Image{
		{EventID: event.ID, Name: "poster.jpg", ObjectKey: "key-1"},
		{EventID: event.ID, Name: "stage.jpg", ObjectKey: "key-2"},
	}

	deleted := false
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return event, nil
		},
		deleteFn: func(event *models.Event) error {
			deleted = true
			return nil
		},
	}
	storage := newMockStorage()

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, storage)

	err := svc.DeleteEvent("abcd1234", "bander")

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"key-1", "key-2"}, storage.deleted)
}

func TestAddImage_OnlyCreatorCanAddImages(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	_, err := svc.AddImage("abcd1234", "intruder", "poster.jpg", "image/jpeg", strings.NewReader("img"))

	var forbiddenErr *apperr.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	assert.Equal(t, "Only event creator can add images.", err.Error())
}

func TestAddImage_StoresContentAndRecord(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}
	var created *models.Image
	imageRepo := &mockImageRepo{
		createFn: func(image *models.Image) error {
			created = image
			return nil
		},
	}
	storage := newMockStorage()

	svc := newEventService(repo, imageRepo, &mockLinkRepo{}, storage)

	image, err := svc.AddImage("abcd1234", "bander", "poster.jpg", "image/jpeg", bytes.NewReader([]byte("img")))

	assert.NoError(t, err)
	assert.Equal(t, "poster.jpg", created.Name)
	assert.Equal(t, []byte("img"), storage.uploaded[image.ObjectKey])
}

func TestGetImage_ImageNotFound(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}
	imageRepo := &mockImageRepo{
		getByNameFn: func(eventID, name string) (*models.Image, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newEventService(repo, imageRepo, &mockLinkRepo{}, newMockStorage())

	_, _, err := svc.GetImage("abcd1234", "missing.jpg")

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Image \"missing.jpg\" was not found.", err.Error())
}

func TestAddLinks_DuplicateAgainstExisting(t *testing.T) {
	event := storedEvent()
	event.Links = []models.Link{{EventID: event.ID, URL: "http://example.com"}}

	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return event, nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	_, err := svc.AddLinks("abcd1234", "bander", models.LinksRequest{
		Links: []models.LinkRequest{{URL: "http://example.com"}},
	})

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Links must have unique url"}, validationErr.Messages)
}

func TestAddLinks_AppendsToEvent(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}
	var created []models.Link
	linkRepo := &mockLinkRepo{
		createFn: func(links []models.Link) error {
			created = links
			return nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, linkRepo, newMockStorage())

	links, err := svc.AddLinks("abcd1234", "bander", models.LinksRequest{
		Links: []models.LinkRequest{
			{URL: "http://example.com", Description: "tickets"},
			{URL: "http://other.example.com"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, links, 2)
	assert.Equal(t, "abcd1234", created[0].EventID)
	assert.Equal(t, "tickets", created[0].Description)
}

func TestDeleteLink_BelongingToAnotherEvent(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(id string) (*models.Event, error) {
			return storedEvent(), nil
		},
	}
	linkRepo := &mockLinkRepo{
		getByIDFn: func(id uint) (*models.Link, error) {
			return &models.Link{ID: id, EventID: "other123", URL: "http://example.com"}, nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, linkRepo, newMockStorage())

	err := svc.DeleteLink("abcd1234", 7, "bander")

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Link \"7\" was not found.", err.Error())
}

func TestListEvents_PassesPaginationThrough(t *testing.T) {
	repo := &mockEventRepo{
		listFn: func(limit, offset int) ([]models.Event, int64, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 5, offset)
			return []models.Event{*storedEvent()}, 42, nil
		},
	}

	svc := newEventService(repo, &mockImageRepo{}, &mockLinkRepo{}, newMockStorage())

	events, total, err := svc.ListEvents(10, 5)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, int64(42), total)
}

package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/repository"
)

type BandService struct {
	bandRepo repository.BandRepository
	userRepo repository.UserRepository
	logger   *zap.SugaredLogger
}

func NewBandService(
	bandRepo repository.BandRepository,
	userRepo repository.UserRepository,
	logger *zap.SugaredLogger,
) *BandService {
	return &BandService{
		bandRepo: bandRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *BandService) GetBand(name string) (*models.Band, error) {
	band, err := s.bandRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Band", name)
		}
		return nil, err
	}
	return band, nil
}

func (s *BandService) ListBands(limit, offset int) ([]models.Band, int64, error) {
	return s.bandRepo.List(limit, offset)
}

func (s *BandService) CreateBand(req models.BandRequest, creator string) (*models.Band, error) {
	if _, err := s.bandRepo.GetByName(req.Name); err == nil {
		return nil, apperr.NewValidation("Band with name \"" + req.Name + "\" already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	members, err := s.resolveMembers(req.Name, creator, req.Members)
	if err != nil {
		return nil, err
	}

	band := &models.Band{
		Name:             req.Name,
		Description:      req.Description,
		RegistrationDate: time.Now(),
		CreatorLogin:     creator,
		Members:          members,
	}

	if err := s.bandRepo.Create(band); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation("Band with name \"" + req.Name + "\" already exists.")
		}
		return nil, err
	}

	s.logger.Infow("band created", "name", band.Name, "creator", creator)

	return band, nil
}

func (s *BandService) EditBand(name string, actor string, req models.BandRequest) error {
	band, err := s.GetBand(name)
	if err != nil {
		return err
	}

	if band.CreatorLogin != actor {
		return apperr.NewForbidden("Only band creator can edit band.")
	}

	if req.Name != name {
		if _, err := s.bandRepo.GetByName(req.Name); err == nil {
			return apperr.NewValidation("Band with name \"" + req.Name + "\" already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.bandRepo.Rename(name, req.Name); err != nil {
			return err
		}
	}

	band.Name = req.Name
	band.Description = req.Description

	if err := s.bandRepo.Update(band); err != nil {
		return err
	}

	if req.Members != nil {
		members, err := s.resolveMembers(req.Name, band.CreatorLogin, req.Members)
		if err != nil {
			return err
		}
		if err := s.bandRepo.ReplaceMembers(req.Name, members); err != nil {
			return err
		}
	}

	return nil
}

func (s *BandService) DeleteBand(name string, actor string) error {
	band, err := s.GetBand(name)
	if err != nil {
		return err
	}

	if band.CreatorLogin != actor {
		return apperr.NewForbidden("Only band creator can delete band.")
	}

	if err := s.bandRepo.Delete(band); err != nil {
		return err
	}

	s.logger.Infow("band deleted", "name", name, "actor", actor)

	return nil
}

func (s *BandService) AddMember(actor string, req models.MemberRequest) error {
	band, err := s.GetBand(req.Ambassador)
	if err != nil {
		return err
	}

	if band.CreatorLogin != actor {
		return apperr.NewForbidden("Only band creator can manage band members.")
	}

	if _, err := s.userRepo.GetByLogin(req.Login); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("User", req.Login)
		}
		return err
	}

	for _, member := range band.Members {
		if member.UserLogin == req.Login {
			return apperr.NewValidation(
				"User \"" + req.Login + "\" is already member of band \"" + band.Name + "\".")
		}
	}

	member := &models.BandMember{
		BandName:         band.Name,
		UserLogin:        req.Login,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Position:         len(band.Members),
	}

	return s.bandRepo.AddMember(member)
}

func (s *BandService) UpdateMember(bandName string, actor string, req models.MemberRequest) error {
	band, err := s.GetBand(bandName)
	if err != nil {
		return err
	}

	if band.CreatorLogin != actor {
		return apperr.NewForbidden("Only band creator can manage band members.")
	}

	if !hasMember(band, req.Login) {
		return apperr.NewNotFound("Member", req.Login)
	}

	member := &models.BandMember{
		BandName:         band.Name,
		UserLogin:        req.Login,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
	}

	return s.bandRepo.UpdateMember(member)
}

func (s *BandService) RemoveMember(bandName, login, actor string) error {
	band, err := s.GetBand(bandName)
	if err != nil {
		return err
	}

	if band.CreatorLogin != actor {
		return apperr.NewForbidden("Only band creator can manage band members.")
	}

	if !hasMember(band, login) {
		return apperr.NewNotFound("Member", login)
	}

	return s.bandRepo.RemoveMember(bandName, login)
}

// resolveMembers builds the member rows for a band. The creator is always
// the first member; listed members are resolved by login and keep their
// request order.
func (s *BandService) resolveMembers(
	bandName string,
	creator string,
	requests []models.BandMemberRequest,
) ([]models.BandMember, error) {
	members := []models.BandMember{
		{
			BandName:  bandName,
			UserLogin: creator,
			Position:  0,
		},
	}

	for _, req := range requests {
		if req.Login == creator {
			continue
		}

		if _, err := s.userRepo.GetByLogin(req.Login); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewValidation("User \"" + req.Login + "\" was not found.")
			}
			return nil, err
		}

		members = append(members, models.BandMember{
			BandName:         bandName,
			UserLogin:        req.Login,
			ShortDescription: req.ShortDescription,
			Description:      req.Description,
			Position:         len(members),
		})
	}

	return members, nil
}

func hasMember(band *models.Band, login string) bool {
	for _, member := range band.Members {
		if member.UserLogin == login {
			return true
		}
	}
	return false
}

package onboarding

import (
	"context"
	"errors"
	"strings"

	"motorhub/internal/domain"
	"motorhub/internal/pkg/logger"
	"motorhub/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

type Service struct {
	workshops  WorkshopRepository
	identities IdentityChecker
	notifs     NotificationSender
	images     ImageStore
}

func NewService(workshops WorkshopRepository, identities IdentityChecker, notifs NotificationSender, images ImageStore) *Service {
	return &Service{
		workshops:  workshops,
		identities: identities,
		notifs:     notifs,
		images:     images,
	}
}

// Register persists a self-service workshop registration in the
// pending-verification state. The password is stored as provided; hashing is
// deferred to the acceptance step so the acceptance email can carry it.
func (s *Service) Register(ctx context.Context, req RegisterWorkshopRequest) (*domain.Workshop, error) {
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		return nil, ErrValidation
	}

	taken, err := s.identities.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !taken {
		if taken, err = s.identities.PhoneTaken(ctx, req.Phone); err != nil {
			return nil, err
		}
	}
	if !taken {
		if taken, err = s.identities.LicenseTaken(ctx, req.LicenseNumber); err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, ErrDuplicateIdentity
	}

	w := &domain.Workshop{
		Name:            req.Name,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		LicenseNumber:   strings.TrimSpace(req.LicenseNumber),
		Services:        req.Services,
		Password:        req.Password,
		ImagePath:       req.ImagePath,
		AccountVerified: false,
		IsActive:        true,
	}

	if err := s.workshops.Create(ctx, w); err != nil {
		return nil, err
	}

	logger.InfoLogger.Infof("workshop registration pending: id=%d email=%s", w.ID, w.Email)
	return w, nil
}

// Decide resolves a pending registration. Rejection is destructive: the
// image file and the record are removed and the registrant may sign up again
// with the same email/phone/license. Acceptance hashes the stored plaintext
// password and promotes the record in place.
func (s *Service) Decide(ctx context.Context, workshopID int64, decision string) error {
	if decision != DecisionAccepted && decision != DecisionRejected {
		return ErrInvalidDecision
	}

	w, err := s.workshops.GetByID(ctx, workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkshopNotFound
		}
		return err
	}
	if w.AccountVerified {
		return ErrAlreadyVerified
	}

	if decision == DecisionRejected {
		return s.reject(ctx, w)
	}
	return s.accept(ctx, w)
}

func (s *Service) reject(ctx context.Context, w *domain.Workshop) error {
	if w.ImagePath != "" {
		if err := s.images.Delete(w.ImagePath); err != nil {
			logger.ErrorLogger.Errorf("failed to delete workshop image %s: %v", w.ImagePath, err)
		}
	}

	if err := s.workshops.Delete(ctx, w.ID); err != nil {
		return err
	}

	if err := s.notifs.WorkshopRejected(ctx, w.Email, w.Name); err != nil {
		logger.ErrorLogger.Errorf("failed to send rejection email to %s: %v", w.Email, err)
	}

	logger.InfoLogger.Infof("workshop registration rejected: id=%d email=%s", w.ID, w.Email)
	return nil
}

func (s *Service) accept(ctx context.Context, w *domain.Workshop) error {
	// The plaintext must be captured before hashing; this email is the only
	// way the workshop learns its credentials.
	plaintext := w.Password

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.notifs.WorkshopAccepted(ctx, w.Email, w.Name, plaintext); err != nil {
		logger.ErrorLogger.Errorf("failed to send acceptance email to %s: %v", w.Email, err)
	}

	w.Password = string(hash)
	w.AccountVerified = true
	if err := s.workshops.Update(ctx, w); err != nil {
		return err
	}

	logger.InfoLogger.Infof("workshop verified: id=%d email=%s", w.ID, w.Email)
	return nil
}

// UpdateProfile fills the post-promotion profile fields. Only the verified
// workshop itself may edit its profile.
func (s *Service) UpdateProfile(ctx context.Context, actor domain.Actor, workshopID int64, req UpdateProfileRequest) (*domain.Workshop, error) {
	if actor.ID != workshopID {
		return nil, ErrForbidden
	}

	w, err := s.workshops.GetByID(ctx, workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	if !w.AccountVerified {
		return nil, ErrWorkshopNotFound
	}

	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.WorkingHours != nil {
		w.WorkingHours = req.WorkingHours
	}
	if req.IsOpen != nil {
		w.IsOpen = *req.IsOpen
	}
	if len(req.Services) > 0 {
		w.Services = req.Services
	}

	if err := s.workshops.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ListVerified is the public browse listing of active, verified workshops.
func (s *Service) ListVerified(ctx context.Context, page, limit int) ([]domain.Workshop, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.workshops.ListVerified(ctx, (page-1)*limit, limit)
}

package auth

import (
	"context"
	"errors"
	"strings"

	"motorhub/internal/domain"
	"motorhub/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users      UserRepository
	workshops  WorkshopRepository
	identities IdentityChecker
	tokens     TokenIssuer
}

func NewService(users UserRepository, workshops WorkshopRepository, identities IdentityChecker, tokens TokenIssuer) *Service {
	return &Service{
		users:      users,
		workshops:  workshops,
		identities: identities,
		tokens:     tokens,
	}
}

// RegisterOwner creates a vehicle-owner account. Unlike workshop onboarding
// there is no review step, so the password is hashed immediately.
func (s *Service) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*domain.User, error) {
	taken, err := s.identities.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !taken {
		if taken, err = s.identities.PhoneTaken(ctx, req.Phone); err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         domain.RoleVehicleOwner,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.InfoLogger.Infof("vehicle owner registered: id=%d email=%s", u.ID, u.Email)
	return u, nil
}

// Login authenticates against the collection named by the portal. Workshop
// logins additionally require a verified account; a pending registration
// cannot sign in even with the right password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	switch req.Portal {
	case string(domain.RoleVehicleOwner), string(domain.RoleAdmin):
		return s.loginUser(ctx, req)
	case string(domain.RoleWorkshop):
		return s.loginWorkshop(ctx, req)
	default:
		return nil, ErrInvalidPortal
	}
}

func (s *Service) loginUser(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if string(u.Role) != req.Portal {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	tok, err := s.tokens.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: tok, Role: string(u.Role), Account: u}, nil
}

func (s *Service) loginWorkshop(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	w, err := s.workshops.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !w.AccountVerified {
		return nil, ErrNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(w.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !w.IsActive {
		return nil, ErrAccountDisabled
	}

	tok, err := s.tokens.Generate(w.ID, string(domain.RoleWorkshop))
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: tok, Role: string(domain.RoleWorkshop), Account: w}, nil
}

// Me resolves the authenticated actor back to its account record.
func (s *Service) Me(ctx context.Context, actor domain.Actor) (any, error) {
	switch actor.Role {
	case domain.RoleWorkshop:
		w, err := s.workshops.GetByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}
		return w, nil
	default:
		u, err := s.users.GetByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}
		return u, nil
	}
}

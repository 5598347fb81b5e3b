package onboarding

import (
	"context"

	"motorhub/internal/domain"
)

type WorkshopRepository interface {
	Create(ctx context.Context, w *domain.Workshop) error
	GetByID(ctx context.Context, id int64) (*domain.Workshop, error)
	Update(ctx context.Context, w *domain.Workshop) error
	Delete(ctx context.Context, id int64) error
	ListVerified(ctx context.Context, offset, limit int) ([]domain.Workshop, int64, error)
}

// IdentityChecker is the shared cross-collection uniqueness check.
type IdentityChecker interface {
	EmailTaken(ctx context.Context, email string) (bool, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
	LicenseTaken(ctx context.Context, license string) (bool, error)
}

// NotificationSender delivers onboarding outcomes. Send failures are logged,
// never rolled back.
type NotificationSender interface {
	WorkshopAccepted(ctx context.Context, email, name, password string) error
	WorkshopRejected(ctx context.Context, email, name string) error
}

// ImageStore removes a stored profile image on rejection. Acceptance keeps
// the file; only the reject path cleans up.
type ImageStore interface {
	Delete(relPath string) error
}

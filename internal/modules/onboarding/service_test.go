package onboarding

import (
	"context"
	"testing"

	"motorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeWorkshopRepo struct {
	byID    map[int64]*domain.Workshop
	nextID  int64
	deleted []int64
}

func newFakeWorkshopRepo() *fakeWorkshopRepo {
	return &fakeWorkshopRepo{byID: map[int64]*domain.Workshop{}, nextID: 1}
}

func (f *fakeWorkshopRepo) Create(ctx context.Context, w *domain.Workshop) error {
	w.ID = f.nextID
	f.nextID++
	cp := *w
	f.byID[w.ID] = &cp
	return nil
}

func (f *fakeWorkshopRepo) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkshopRepo) Update(ctx context.Context, w *domain.Workshop) error {
	if _, ok := f.byID[w.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *w
	f.byID[w.ID] = &cp
	return nil
}

func (f *fakeWorkshopRepo) Delete(ctx context.Context, id int64) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeWorkshopRepo) ListVerified(ctx context.Context, offset, limit int) ([]domain.Workshop, int64, error) {
	var out []domain.Workshop
	for _, w := range f.byID {
		if w.AccountVerified && w.IsActive {
			out = append(out, *w)
		}
	}
	return out, int64(len(out)), nil
}

type fakeIdentities struct {
	emailTaken   bool
	phoneTaken   bool
	licenseTaken bool
}

func (f *fakeIdentities) EmailTaken(ctx context.Context, email string) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeIdentities) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	return f.phoneTaken, nil
}

func (f *fakeIdentities) LicenseTaken(ctx context.Context, license string) (bool, error) {
	return f.licenseTaken, nil
}

type sentMail struct {
	kind     string
	email    string
	name     string
	password string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) WorkshopAccepted(ctx context.Context, email, name, password string) error {
	f.sent = append(f.sent, sentMail{kind: "accepted", email: email, name: name, password: password})
	return f.err
}

func (f *fakeNotifier) WorkshopRejected(ctx context.Context, email, name string) error {
	f.sent = append(f.sent, sentMail{kind: "rejected", email: email, name: name})
	return f.err
}

type fakeImages struct {
	deleted []string
}

func (f *fakeImages) Delete(relPath string) error {
	f.deleted = append(f.deleted, relPath)
	return nil
}

func validRegistration() RegisterWorkshopRequest {
	return RegisterWorkshopRequest{
		Name:          "Fast Fix Garage",
		Email:         "garage@example.com",
		Phone:         "+77020000000",
		Address:       "12 Abay Ave",
		LicenseNumber: "LIC-001",
		Services:      []string{"oil change", "brake repair"},
		Password:      "supersecret1",
	}
}

func TestRegisterWorkshop(t *testing.T) {
	ctx := context.Background()

	t.Run("stores plaintext password unverified", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})

		w, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		stored := repo.byID[w.ID]
		assert.False(t, stored.AccountVerified)
		assert.Equal(t, "supersecret1", stored.Password)
		assert.True(t, stored.IsActive)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(newFakeWorkshopRepo(), &fakeIdentities{emailTaken: true}, &fakeNotifier{}, &fakeImages{})

		_, err := svc.Register(ctx, validRegistration())
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})

	t.Run("duplicate license", func(t *testing.T) {
		svc := NewService(newFakeWorkshopRepo(), &fakeIdentities{licenseTaken: true}, &fakeNotifier{}, &fakeImages{})

		_, err := svc.Register(ctx, validRegistration())
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		svc := NewService(newFakeWorkshopRepo(), &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})

		req := validRegistration()
		req.Password = "short"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestDecideWorkshop(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, repo *fakeWorkshopRepo, svc *Service) *domain.Workshop {
		t.Helper()
		w, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		return w
	}

	t.Run("accept hashes password and emails the plaintext", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		notifier := &fakeNotifier{}
		svc := NewService(repo, &fakeIdentities{}, notifier, &fakeImages{})
		w := register(t, repo, svc)

		require.NoError(t, svc.Decide(ctx, w.ID, DecisionAccepted))

		stored := repo.byID[w.ID]
		assert.True(t, stored.AccountVerified)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret1")))

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "accepted", notifier.sent[0].kind)
		assert.Equal(t, "supersecret1", notifier.sent[0].password)
	})

	t.Run("accept survives a failed email", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		notifier := &fakeNotifier{err: assert.AnError}
		svc := NewService(repo, &fakeIdentities{}, notifier, &fakeImages{})
		w := register(t, repo, svc)

		require.NoError(t, svc.Decide(ctx, w.ID, DecisionAccepted))
		assert.True(t, repo.byID[w.ID].AccountVerified)
	})

	t.Run("reject deletes image, record and emails", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		notifier := &fakeNotifier{}
		images := &fakeImages{}
		svc := NewService(repo, &fakeIdentities{}, notifier, images)

		req := validRegistration()
		req.ImagePath = "2026/08/28/abc.jpg"
		w, err := svc.Register(ctx, req)
		require.NoError(t, err)

		require.NoError(t, svc.Decide(ctx, w.ID, DecisionRejected))

		assert.NotContains(t, repo.byID, w.ID)
		assert.Equal(t, []string{"2026/08/28/abc.jpg"}, images.deleted)
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "rejected", notifier.sent[0].kind)
	})

	t.Run("reject without image skips the store", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		images := &fakeImages{}
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, images)
		w := register(t, repo, svc)

		require.NoError(t, svc.Decide(ctx, w.ID, DecisionRejected))
		assert.Empty(t, images.deleted)
	})

	t.Run("registering again after rejection succeeds", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})
		w := register(t, repo, svc)

		require.NoError(t, svc.Decide(ctx, w.ID, DecisionRejected))

		again, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.NotEqual(t, w.ID, again.ID)
	})

	t.Run("unknown decision", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})
		w := register(t, repo, svc)

		assert.ErrorIs(t, svc.Decide(ctx, w.ID, "maybe"), ErrInvalidDecision)
	})

	t.Run("missing workshop", func(t *testing.T) {
		svc := NewService(newFakeWorkshopRepo(), &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})
		assert.ErrorIs(t, svc.Decide(ctx, 99, DecisionAccepted), ErrWorkshopNotFound)
	})

	t.Run("double accept", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})
		w := register(t, repo, svc)

		require.NoError(t, svc.Decide(ctx, w.ID, DecisionAccepted))
		assert.ErrorIs(t, svc.Decide(ctx, w.ID, DecisionAccepted), ErrAlreadyVerified)
	})
}

func TestUpdateWorkshopProfile(t *testing.T) {
	ctx := context.Background()

	asWorkshop := func(id int64) domain.Actor {
		return domain.Actor{ID: id, Role: domain.RoleWorkshop}
	}

	t.Run("pending workshop has no profile path", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})

		w, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		desc := "Full service garage"
		_, err = svc.UpdateProfile(ctx, asWorkshop(w.ID), w.ID, UpdateProfileRequest{Description: &desc})
		assert.ErrorIs(t, err, ErrWorkshopNotFound)
	})

	t.Run("verified workshop updates its own profile", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})

		w, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		require.NoError(t, svc.Decide(ctx, w.ID, DecisionAccepted))

		desc := "Full service garage"
		open := true
		updated, err := svc.UpdateProfile(ctx, asWorkshop(w.ID), w.ID, UpdateProfileRequest{
			Description: &desc,
			IsOpen:      &open,
			Services:    []string{"diagnostics"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Full service garage", updated.Description)
		assert.True(t, updated.IsOpen)
		assert.Equal(t, []string{"diagnostics"}, updated.Services)
	})

	t.Run("another workshop cannot edit the profile", func(t *testing.T) {
		repo := newFakeWorkshopRepo()
		svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})

		w, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		require.NoError(t, svc.Decide(ctx, w.ID, DecisionAccepted))

		desc := "hijacked"
		_, err = svc.UpdateProfile(ctx, asWorkshop(w.ID+1), w.ID, UpdateProfileRequest{Description: &desc})
		assert.ErrorIs(t, err, ErrForbidden)
		assert.NotEqual(t, "hijacked", repo.byID[w.ID].Description)
	})
}

func TestListVerifiedWorkshops(t *testing.T) {
	ctx := context.Background()

	repo := newFakeWorkshopRepo()
	svc := NewService(repo, &fakeIdentities{}, &fakeNotifier{}, &fakeImages{})

	first, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Email = "other@example.com"
	second.Phone = "+77030000000"
	second.LicenseNumber = "LIC-002"
	_, err = svc.Register(ctx, second)
	require.NoError(t, err)

	// Only the accepted workshop shows up in the browse listing.
	require.NoError(t, svc.Decide(ctx, first.ID, DecisionAccepted))

	items, total, err := svc.ListVerified(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)
}

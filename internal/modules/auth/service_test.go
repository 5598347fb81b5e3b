package auth

import (
	"context"
	"strings"
	"testing"

	"motorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeWorkshopRepo struct {
	byEmail map[string]*domain.Workshop
}

func (f *fakeWorkshopRepo) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	for _, w := range f.byEmail {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkshopRepo) GetByEmail(ctx context.Context, email string) (*domain.Workshop, error) {
	w, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *w
	return &cp, nil
}

type fakeIdentities struct {
	emailTaken bool
	phoneTaken bool
}

func (f *fakeIdentities) EmailTaken(ctx context.Context, email string) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeIdentities) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	return f.phoneTaken, nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(accountID int64, role string) (string, error) {
	return "tok", nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegisterOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password immediately", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewService(users, &fakeWorkshopRepo{}, &fakeIdentities{}, fakeTokens{})

		u, err := svc.RegisterOwner(ctx, RegisterOwnerRequest{
			Name:     "Aidos",
			Email:    "Aidos@Example.com",
			Phone:    "+77010000000",
			Password: "ownerpass123",
		})
		require.NoError(t, err)

		assert.Equal(t, "aidos@example.com", u.Email)
		assert.Equal(t, domain.RoleVehicleOwner, u.Role)
		assert.True(t, u.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("ownerpass123")))
	})

	t.Run("duplicate identity", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), &fakeWorkshopRepo{}, &fakeIdentities{phoneTaken: true}, fakeTokens{})

		_, err := svc.RegisterOwner(ctx, RegisterOwnerRequest{
			Name:     "Aidos",
			Email:    "aidos@example.com",
			Phone:    "+77010000000",
			Password: "ownerpass123",
		})
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("owner login succeeds", func(t *testing.T) {
		users := newFakeUserRepo()
		users.byEmail["aidos@example.com"] = &domain.User{
			ID:           1,
			Email:        "aidos@example.com",
			PasswordHash: mustHash(t, "ownerpass123"),
			Role:         domain.RoleVehicleOwner,
			IsActive:     true,
		}
		svc := NewService(users, &fakeWorkshopRepo{}, &fakeIdentities{}, fakeTokens{})

		res, err := svc.Login(ctx, LoginRequest{Email: "aidos@example.com", Password: "ownerpass123", Portal: "vehicleOwner"})
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
		assert.Equal(t, "vehicleOwner", res.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := newFakeUserRepo()
		users.byEmail["aidos@example.com"] = &domain.User{
			ID:           1,
			Email:        "aidos@example.com",
			PasswordHash: mustHash(t, "ownerpass123"),
			Role:         domain.RoleVehicleOwner,
			IsActive:     true,
		}
		svc := NewService(users, &fakeWorkshopRepo{}, &fakeIdentities{}, fakeTokens{})

		_, err := svc.Login(ctx, LoginRequest{Email: "aidos@example.com", Password: "nope", Portal: "vehicleOwner"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated owner is refused", func(t *testing.T) {
		users := newFakeUserRepo()
		users.byEmail["aidos@example.com"] = &domain.User{
			ID:           1,
			Email:        "aidos@example.com",
			PasswordHash: mustHash(t, "ownerpass123"),
			Role:         domain.RoleVehicleOwner,
			IsActive:     false,
		}
		svc := NewService(users, &fakeWorkshopRepo{}, &fakeIdentities{}, fakeTokens{})

		_, err := svc.Login(ctx, LoginRequest{Email: "aidos@example.com", Password: "ownerpass123", Portal: "vehicleOwner"})
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("pending workshop cannot log in even with the right password", func(t *testing.T) {
		workshops := &fakeWorkshopRepo{byEmail: map[string]*domain.Workshop{
			"garage@example.com": {
				ID:              2,
				Email:           "garage@example.com",
				Password:        "supersecret1", // still plaintext pre-acceptance
				AccountVerified: false,
				IsActive:        true,
			},
		}}
		svc := NewService(newFakeUserRepo(), workshops, &fakeIdentities{}, fakeTokens{})

		_, err := svc.Login(ctx, LoginRequest{Email: "garage@example.com", Password: "supersecret1", Portal: "workshop"})
		assert.ErrorIs(t, err, ErrNotVerified)
	})

	t.Run("verified workshop logs in against the hash", func(t *testing.T) {
		workshops := &fakeWorkshopRepo{byEmail: map[string]*domain.Workshop{
			"garage@example.com": {
				ID:              2,
				Email:           "garage@example.com",
				Password:        mustHash(t, "supersecret1"),
				AccountVerified: true,
				IsActive:        true,
			},
		}}
		svc := NewService(newFakeUserRepo(), workshops, &fakeIdentities{}, fakeTokens{})

		res, err := svc.Login(ctx, LoginRequest{Email: "garage@example.com", Password: "supersecret1", Portal: "workshop"})
		require.NoError(t, err)
		assert.Equal(t, "workshop", res.Role)
	})

	t.Run("portal role mismatch", func(t *testing.T) {
		users := newFakeUserRepo()
		users.byEmail["aidos@example.com"] = &domain.User{
			ID:           1,
			Email:        "aidos@example.com",
			PasswordHash: mustHash(t, "ownerpass123"),
			Role:         domain.RoleVehicleOwner,
			IsActive:     true,
		}
		svc := NewService(users, &fakeWorkshopRepo{}, &fakeIdentities{}, fakeTokens{})

		_, err := svc.Login(ctx, LoginRequest{Email: "aidos@example.com", Password: "ownerpass123", Portal: "admin"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown portal", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), &fakeWorkshopRepo{}, &fakeIdentities{}, fakeTokens{})

		_, err := svc.Login(ctx, LoginRequest{Email: "a@b.c", Password: "x", Portal: "superuser"})
		assert.ErrorIs(t, err, ErrInvalidPortal)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	users.byEmail["aidos@example.com"] = &domain.User{ID: 1, Email: "aidos@example.com", Role: domain.RoleVehicleOwner}
	workshops := &fakeWorkshopRepo{byEmail: map[string]*domain.Workshop{
		"garage@example.com": {ID: 2, Email: "garage@example.com", AccountVerified: true},
	}}
	svc := NewService(users, workshops, &fakeIdentities{}, fakeTokens{})

	t.Run("owner actor resolves to user", func(t *testing.T) {
		account, err := svc.Me(ctx, domain.Actor{ID: 1, Role: domain.RoleVehicleOwner})
		require.NoError(t, err)
		u, ok := account.(*domain.User)
		require.True(t, ok)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("workshop actor resolves to workshop", func(t *testing.T) {
		account, err := svc.Me(ctx, domain.Actor{ID: 2, Role: domain.RoleWorkshop})
		require.NoError(t, err)
		w, ok := account.(*domain.Workshop)
		require.True(t, ok)
		assert.Equal(t, int64(2), w.ID)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := svc.Me(ctx, domain.Actor{ID: 9, Role: domain.RoleVehicleOwner})
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

package review

import (
	"context"
	"testing"

	"motorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pairKey struct {
	owner, workshop int64
}

type fakeReviewRepo struct {
	byPair map[pairKey]*domain.Review
	nextID int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byPair: map[pairKey]*domain.Review{}, nextID: 1}
}

func (f *fakeReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	rv.ID = f.nextID
	f.nextID++
	cp := *rv
	f.byPair[pairKey{rv.OwnerID, rv.WorkshopID}] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByOwnerAndWorkshop(ctx context.Context, ownerID, workshopID int64) (*domain.Review, error) {
	rv, ok := f.byPair[pairKey{ownerID, workshopID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rv
	return &cp, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	cp := *rv
	f.byPair[pairKey{rv.OwnerID, rv.WorkshopID}] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByWorkshop(ctx context.Context, workshopID int64, limit, offset int) ([]domain.Review, error) {
	var out []domain.Review
	for k, rv := range f.byPair {
		if k.workshop == workshopID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) AverageForWorkshop(ctx context.Context, workshopID int64) (float64, int64, error) {
	var sum, count int64
	for k, rv := range f.byPair {
		if k.workshop == workshopID {
			sum += int64(rv.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeUserGate struct {
	missing bool
}

func (f *fakeUserGate) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.missing {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.User{ID: id, Role: domain.RoleVehicleOwner}, nil
}

type fakeWorkshopGate struct {
	missing bool
}

func (f *fakeWorkshopGate) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	if f.missing {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.Workshop{ID: id, AccountVerified: true}, nil
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("first submission creates", func(t *testing.T) {
		repo := newFakeReviewRepo()
		svc := NewService(repo, &fakeUserGate{}, &fakeWorkshopGate{})

		rv, created, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 4, Comment: "solid work"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEmpty(t, rv.ReviewID)
		assert.Equal(t, 4, rv.Rating)
	})

	t.Run("second submission replaces the first", func(t *testing.T) {
		repo := newFakeReviewRepo()
		svc := NewService(repo, &fakeUserGate{}, &fakeWorkshopGate{})

		first, created, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 2, Comment: "slow"})
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 5, Comment: "much better"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ReviewID, second.ReviewID)
		assert.Equal(t, 5, second.Rating)
		assert.Equal(t, "much better", second.Comment)

		stored := repo.byPair[pairKey{1, 2}]
		assert.Equal(t, 5, stored.Rating)
		assert.Len(t, repo.byPair, 1)
	})

	t.Run("different workshops keep separate reviews", func(t *testing.T) {
		repo := newFakeReviewRepo()
		svc := NewService(repo, &fakeUserGate{}, &fakeWorkshopGate{})

		_, _, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 3})
		require.NoError(t, err)
		_, created, err := svc.Submit(ctx, 1, 3, SubmitReviewRequest{Rating: 5})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Len(t, repo.byPair, 2)
	})

	t.Run("rating bounds", func(t *testing.T) {
		svc := NewService(newFakeReviewRepo(), &fakeUserGate{}, &fakeWorkshopGate{})

		_, _, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 0})
		assert.ErrorIs(t, err, ErrValidation)

		_, _, err = svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 6})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing owner", func(t *testing.T) {
		svc := NewService(newFakeReviewRepo(), &fakeUserGate{missing: true}, &fakeWorkshopGate{})

		_, _, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 4})
		assert.ErrorIs(t, err, ErrOwnerNotFound)
	})

	t.Run("missing workshop", func(t *testing.T) {
		svc := NewService(newFakeReviewRepo(), &fakeUserGate{}, &fakeWorkshopGate{missing: true})

		_, _, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 4})
		assert.ErrorIs(t, err, ErrWorkshopNotFound)
	})
}

func TestRatingForWorkshop(t *testing.T) {
	ctx := context.Background()

	repo := newFakeReviewRepo()
	svc := NewService(repo, &fakeUserGate{}, &fakeWorkshopGate{})

	_, _, err := svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 2})
	require.NoError(t, err)
	_, _, err = svc.Submit(ctx, 3, 2, SubmitReviewRequest{Rating: 4})
	require.NoError(t, err)

	summary, err := svc.RatingForWorkshop(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 3.0, summary.Average, 0.001)

	// Replacing a rating moves the average instead of adding a row.
	_, _, err = svc.Submit(ctx, 1, 2, SubmitReviewRequest{Rating: 4})
	require.NoError(t, err)

	summary, err = svc.RatingForWorkshop(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)
}

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDurableRegistry_CreateAndResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clock := newFakeClock()
	repo := mock.NewMockSessionRepository(ctrl)
	id := hexID('d')

	r := NewRegistry(NewDurableBackend(repo),
		WithTTL(time.Minute),
		WithClock(clock.Now),
		WithIDGenerator(sequenceIDs(id)),
	)

	stored := models.Session{ID: id, UserID: "u-1", CreatedAt: clock.Now()}

	repo.EXPECT().CreateSession(ctx, stored).Return(nil)
	repo.EXPECT().FindSession(ctx, id).Return(stored, nil).Times(2)

	got, err := r.Create(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	userID, err := r.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)

	clock.Advance(time.Minute + time.Second)
	_, err = r.Resolve(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDurableRegistry_CollisionRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock.NewMockSessionRepository(ctrl)
	taken, fresh := hexID('a'), hexID('b')

	r := NewRegistry(NewDurableBackend(repo), WithIDGenerator(sequenceIDs(taken, fresh)))

	gomock.InOrder(
		repo.EXPECT().CreateSession(ctx, gomock.Any()).Return(store.ErrSessionAlreadyExists),
		repo.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, fresh, s.ID)
			return nil
		}),
	)

	id, err := r.Create(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, fresh, id)
}

func TestDurableRegistry_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock.NewMockSessionRepository(ctrl)
	id := hexID('e')
	r := NewRegistry(NewDurableBackend(repo), WithIDGenerator(sequenceIDs(id)))

	dbErr := errors.New("connection reset")
	repo.EXPECT().CreateSession(ctx, gomock.Any()).Return(dbErr)
	repo.EXPECT().FindSession(ctx, id).Return(models.Session{}, store.ErrStorageTimeout)
	repo.EXPECT().DeleteSession(ctx, id).Return(false, dbErr)

	_, err := r.Create(ctx, "u-1")
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, dbErr)

	_, err = r.Resolve(ctx, id)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, store.ErrStorageTimeout)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	_, err = r.Destroy(ctx, id)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestDurableRegistry_NotFoundAndDestroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock.NewMockSessionRepository(ctrl)
	id := hexID('f')
	r := NewRegistry(NewDurableBackend(repo))

	repo.EXPECT().FindSession(ctx, id).Return(models.Session{}, store.ErrSessionNotFound)
	gomock.InOrder(
		repo.EXPECT().DeleteSession(ctx, id).Return(true, nil),
		repo.EXPECT().DeleteSession(ctx, id).Return(false, nil),
	)

	_, err := r.Resolve(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	removed, err := r.Destroy(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.Destroy(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

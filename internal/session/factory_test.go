package session

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)

	tests := []struct {
		authType    models.AuthType
		wantTTL     time.Duration
		wantDurable bool
	}{
		{authType: models.AuthSession, wantTTL: 0},
		{authType: models.AuthSessionExp, wantTTL: time.Minute},
		{authType: models.AuthSessionDB, wantTTL: time.Minute, wantDurable: true},
		{authType: models.AuthBasic, wantTTL: time.Minute},
		{authType: models.AuthNone, wantTTL: time.Minute},
	}

	for _, tt := range tests {
		t.Run(string(tt.authType), func(t *testing.T) {
			r, err := New(tt.authType, repo, time.Minute)
			require.NoError(t, err)

			reg := r.(*registry)
			assert.Equal(t, tt.wantTTL, reg.ttl)
			_, durable := reg.backend.(*durableBackend)
			assert.Equal(t, tt.wantDurable, durable)
		})
	}
}

func TestNew_OptionsOverride(t *testing.T) {
	clock := newFakeClock()
	r, err := New(models.AuthSessionExp, nil, time.Minute, WithTTL(time.Hour), WithClock(clock.Now))
	require.NoError(t, err)

	id, err := r.Create(context.Background(), "u-1")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	userID, err := r.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(models.AuthSessionDB, nil, time.Minute)
	assert.ErrorIs(t, err, ErrNoRepository)

	_, err = New("jwt", nil, time.Minute)
	assert.Error(t, err)
}

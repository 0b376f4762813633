package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthai/internal/models"
)

func TestRegister(t *testing.T) {
	a := NewMemoryAuthenticator()

	identity, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "user@example.com", identity.Email)

	// Registration signs the identity in.
	current := a.Current()
	require.NotNil(t, current)
	assert.Equal(t, identity.ID, current.ID)
}

func TestRegister_Validation(t *testing.T) {
	a := NewMemoryAuthenticator()

	_, err := a.Register(context.Background(), "", "pw")
	require.Error(t, err)

	_, err = a.Register(context.Background(), "user@example.com", "")
	require.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	a := NewMemoryAuthenticator()
	_, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)

	_, err = a.Register(context.Background(), "user@example.com", "other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAuthenticate(t *testing.T) {
	a := NewMemoryAuthenticator()
	registered, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, a.Logout(context.Background()))

	identity, err := a.Authenticate(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.ID)
	require.NotNil(t, a.Current())
}

func TestAuthenticate_Rejected(t *testing.T) {
	a := NewMemoryAuthenticator()
	_, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, a.Logout(context.Background()))

	_, err = a.Authenticate(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, a.Current())

	_, err = a.Authenticate(context.Background(), "nobody@example.com", "pw")
	require.Error(t, err)
}

func TestSubscribe_NotifiesOnEveryChange(t *testing.T) {
	a := NewMemoryAuthenticator()

	var events []*models.Identity
	unsubscribe := a.Subscribe(func(identity *models.Identity) {
		events = append(events, identity)
	})
	defer unsubscribe()

	identity, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, a.Logout(context.Background()))
	_, err = a.Authenticate(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)

	require.Len(t, events, 3)
	require.NotNil(t, events[0])
	assert.Equal(t, identity.ID, events[0].ID)
	assert.Nil(t, events[1])
	require.NotNil(t, events[2])
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	a := NewMemoryAuthenticator()

	calls := 0
	unsubscribe := a.Subscribe(func(*models.Identity) { calls++ })

	_, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()
	unsubscribe() // idempotent

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	a := NewMemoryAuthenticator()
	identity, err := a.Register(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)

	current := a.Current()
	require.NotNil(t, current)
	current.Email = "mutated"

	assert.Equal(t, identity.Email, a.Current().Email)
}

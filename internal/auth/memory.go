// Package auth provides identity-provider implementations behind the
// session.Authenticator boundary. MemoryAuthenticator is the in-process
// variant used for demo-grade production mode and in tests.
package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"wealthai/internal/models"
)

// MemoryAuthenticator keeps a credential table in memory and notifies
// subscribers on every identity change.
type MemoryAuthenticator struct {
	mu          sync.Mutex
	users       map[string]credential // keyed by email
	current     *models.Identity
	subscribers map[int]func(*models.Identity)
	nextSubID   int
}

type credential struct {
	identity models.Identity
	password string
}

// NewMemoryAuthenticator creates an empty MemoryAuthenticator.
func NewMemoryAuthenticator() *MemoryAuthenticator {
	return &MemoryAuthenticator{
		users:       make(map[string]credential),
		subscribers: make(map[int]func(*models.Identity)),
	}
}

// Register creates a new identity for the email/password pair and signs it
// in.
func (a *MemoryAuthenticator) Register(_ context.Context, email, password string) (models.Identity, error) {
	if email == "" || password == "" {
		return models.Identity{}, fmt.Errorf("email and password are required")
	}

	a.mu.Lock()
	if _, exists := a.users[email]; exists {
		a.mu.Unlock()
		return models.Identity{}, fmt.Errorf("email '%s' is already registered", email)
	}

	identity := models.Identity{ID: uuid.NewString(), Email: email}
	a.users[email] = credential{identity: identity, password: password}
	a.current = &identity
	a.mu.Unlock()

	a.notify(&identity)
	return identity, nil
}

// Authenticate verifies the credentials and signs the identity in.
func (a *MemoryAuthenticator) Authenticate(_ context.Context, email, password string) (models.Identity, error) {
	a.mu.Lock()
	cred, ok := a.users[email]
	if !ok || cred.password != password {
		a.mu.Unlock()
		return models.Identity{}, fmt.Errorf("invalid email or password")
	}
	identity := cred.identity
	a.current = &identity
	a.mu.Unlock()

	a.notify(&identity)
	return identity, nil
}

// Logout signs the current identity out and notifies subscribers with nil.
func (a *MemoryAuthenticator) Logout(_ context.Context) error {
	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()

	a.notify(nil)
	return nil
}

// Current returns the signed-in identity, or nil.
func (a *MemoryAuthenticator) Current() *models.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	id := *a.current
	return &id
}

// Subscribe registers a callback for identity changes and returns an
// unsubscribe function. Unsubscribing is idempotent.
func (a *MemoryAuthenticator) Subscribe(fn func(*models.Identity)) func() {
	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subscribers, id)
		a.mu.Unlock()
	}
}

func (a *MemoryAuthenticator) notify(identity *models.Identity) {
	a.mu.Lock()
	fns := make([]func(*models.Identity), 0, len(a.subscribers))
	for _, fn := range a.subscribers {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

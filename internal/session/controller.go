// Package session tracks whether the active session is DEMO (seeded,
// ephemeral) or PRODUCTION (authenticated, persisted), and gates the
// operations that require durable storage. The identity and persistence
// boundaries are injected interfaces, substitutable by test doubles.
package session

import (
	"context"
	"sync"

	"wealthai/internal/ledger"
	"wealthai/internal/logging"
	"wealthai/internal/models"
	"wealthai/internal/trackererror"
)

// Mode is the current session mode.
type Mode string

const (
	Demo       Mode = "DEMO"
	Production Mode = "PRODUCTION"
)

// Authenticator is the identity-provider boundary. Subscribe registers a
// callback invoked on every identity change (nil means signed out) and
// returns an unsubscribe function.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
	Register(ctx context.Context, email, password string) (models.Identity, error)
	Logout(ctx context.Context) error
	Subscribe(fn func(*models.Identity)) (unsubscribe func())
}

// LedgerSource is the persistence boundary: it durably stores ledgers keyed
// by identity. Writes are best-effort; the core offers no atomicity between
// the in-memory ledger and the store.
type LedgerSource interface {
	LoadLedger(ctx context.Context, identity models.Identity) (ledger.Seed, error)
	SaveTransaction(ctx context.Context, identity models.Identity, tx models.Transaction) error
	SaveAccount(ctx context.Context, identity models.Identity, account models.Account) error
	DeleteAccount(ctx context.Context, identity models.Identity, accountID string) error
}

// Controller owns the mode state machine. All transitions are synchronous;
// logging out always lands back on the built-in demo seed.
type Controller struct {
	mu          sync.RWMutex
	mode        Mode
	identity    *models.Identity
	unsubscribe func()

	ledger *ledger.Ledger
	auth   Authenticator
	source LedgerSource
	logger logging.Logger
}

// NewController creates a controller in DEMO mode. auth and source may be
// nil, in which case the session can never leave demo mode.
func NewController(l *ledger.Ledger, auth Authenticator, source LedgerSource, logger logging.Logger) *Controller {
	return &Controller{
		mode:   Demo,
		ledger: l,
		auth:   auth,
		source: source,
		logger: logger,
	}
}

// Start registers the identity-change subscription. An externally signalled
// sign-out (identity becomes nil) resets to demo exactly like Logout.
func (c *Controller) Start() {
	if c.auth == nil {
		return
	}
	c.unsubscribe = c.auth.Subscribe(func(identity *models.Identity) {
		if identity == nil {
			c.resetToDemo()
		}
	})
}

// Close releases the identity subscription. Safe to call on all exit paths.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Mode returns the current session mode.
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Identity returns the authenticated identity, or nil in demo mode.
func (c *Controller) Identity() *models.Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return nil
	}
	id := *c.identity
	return &id
}

// Login authenticates and, on success, replaces the ledger with the
// identity's persisted data and enters PRODUCTION. On failure the session
// stays in DEMO and the error carries a display reason.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	return c.enterProduction(ctx, "login", func() (models.Identity, error) {
		return c.auth.Authenticate(ctx, email, password)
	})
}

// Register creates an account at the identity provider and enters
// PRODUCTION, symmetric with Login.
func (c *Controller) Register(ctx context.Context, email, password string) error {
	return c.enterProduction(ctx, "registration", func() (models.Identity, error) {
		return c.auth.Register(ctx, email, password)
	})
}

func (c *Controller) enterProduction(ctx context.Context, operation string, authenticate func() (models.Identity, error)) error {
	if c.auth == nil || c.source == nil {
		return &trackererror.AuthError{Operation: operation, Reason: "not authenticated: no identity provider configured"}
	}

	identity, err := authenticate()
	if err != nil {
		c.logger.WithError(err).Warn("Authentication failed",
			logging.Field{Key: logging.FieldOperation, Value: operation})
		return &trackererror.AuthError{Operation: operation, Reason: err.Error()}
	}

	seed, err := c.source.LoadLedger(ctx, identity)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load persisted ledger",
			logging.Field{Key: logging.FieldEmail, Value: identity.Email})
		return &trackererror.AuthError{Operation: operation, Reason: "could not load ledger: " + err.Error()}
	}

	c.mu.Lock()
	c.identity = &identity
	c.mode = Production
	c.mu.Unlock()

	c.ledger.ResetToSeed(seed)

	c.logger.Info("Entered production mode",
		logging.Field{Key: logging.FieldEmail, Value: identity.Email})
	return nil
}

// Logout signs out at the identity provider and unconditionally resets the
// session to the built-in demo seed. The reset happens even when the
// provider call fails.
func (c *Controller) Logout(ctx context.Context) {
	if c.auth != nil {
		if err := c.auth.Logout(ctx); err != nil {
			c.logger.WithError(err).Warn("Identity provider logout failed")
		}
	}
	c.resetToDemo()
}

func (c *Controller) resetToDemo() {
	c.mu.Lock()
	c.identity = nil
	c.mode = Demo
	c.mu.Unlock()

	c.ledger.ResetToSeed(ledger.DefaultSeed())
	c.logger.Info("Reset to demo mode")
}

// Record appends a transaction to the ledger and, in production mode,
// best-effort persists it. A persistence failure does not roll back the
// in-memory ledger.
func (c *Controller) Record(ctx context.Context, req ledger.RecordRequest) (models.Transaction, error) {
	tx, err := c.ledger.RecordTransaction(req)
	if err != nil {
		return models.Transaction{}, err
	}

	if identity := c.Identity(); identity != nil && c.source != nil {
		if err := c.source.SaveTransaction(ctx, *identity, tx); err != nil {
			c.logger.WithError(err).Warn("Failed to persist transaction",
				logging.Field{Key: logging.FieldTransaction, Value: tx.ID})
		}
	}
	return tx, nil
}

// CreateAccount adds a bank account. Account creation expects durable
// storage, so it is rejected in demo mode before any mutation.
func (c *Controller) CreateAccount(ctx context.Context, account models.Account) error {
	if err := c.requireProduction("account creation"); err != nil {
		return err
	}
	if err := c.ledger.AddAccount(account); err != nil {
		return err
	}

	identity := c.Identity()
	if err := c.source.SaveAccount(ctx, *identity, account); err != nil {
		c.logger.WithError(err).Warn("Failed to persist account",
			logging.Field{Key: logging.FieldAccount, Value: account.ID})
	}
	return nil
}

// DeleteAccount removes a bank account and its transactions. Like creation,
// it is rejected in demo mode.
func (c *Controller) DeleteAccount(ctx context.Context, accountID string) error {
	if err := c.requireProduction("account deletion"); err != nil {
		return err
	}
	if err := c.ledger.RemoveAccount(accountID); err != nil {
		return err
	}

	identity := c.Identity()
	if err := c.source.DeleteAccount(ctx, *identity, accountID); err != nil {
		c.logger.WithError(err).Warn("Failed to delete persisted account",
			logging.Field{Key: logging.FieldAccount, Value: accountID})
	}
	return nil
}

func (c *Controller) requireProduction(operation string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.mode != Production {
		return &trackererror.ModeError{Operation: operation, Mode: string(c.mode)}
	}
	return nil
}

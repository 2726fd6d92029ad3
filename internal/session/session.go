// Package session owns the process-wide current-user pointer: hydrated from
// the persisted session collection at startup, written on login, cleared on
// logout. Never implicit.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/orgball2608/remixgram/internal/domain"
	sessionrepo "github.com/orgball2608/remixgram/internal/repositories/session"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/internal/users"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

var ErrNotLoggedIn = errors.New("no active session")

type Opts struct {
	fx.In

	SessionRepo sessionrepo.Repository
	Users       users.Client
	Logger      logger.Logger
}

type Manager struct {
	SessionRepo sessionrepo.Repository
	Users       users.Client
	Logger      logger.Logger

	mu      sync.Mutex
	current string
}

func New(opts Opts) *Manager {
	return &Manager{
		SessionRepo: opts.SessionRepo,
		Users:       opts.Users,
		Logger:      opts.Logger.WithComponent("Session"),
	}
}

// Hydrate restores the persisted pointer. A pointer naming an unknown user
// is discarded.
func (m *Manager) Hydrate(ctx context.Context) error {
	userID, err := m.SessionRepo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrAbsent):
		userID = ""
	default:
		m.Logger.Error("Failed to load session, starting logged out", "error", err)
		userID = ""
	}

	if userID != "" {
		if _, err := m.Users.Get(userID); err != nil {
			m.Logger.Warn("Persisted session references unknown user, discarding", "user_id", userID)
			userID = ""
		}
	}

	m.mu.Lock()
	m.current = userID
	m.mu.Unlock()
	return nil
}

// Current returns the logged-in user id, if any.
func (m *Manager) Current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != ""
}

func (m *Manager) Login(ctx context.Context, userID string) (domain.User, error) {
	user, err := m.Users.Get(userID)
	if err != nil {
		return domain.User{}, err
	}

	m.mu.Lock()
	m.current = userID
	m.SessionRepo.SaveAsync(userID)
	m.mu.Unlock()

	m.Logger.Info("Logged in", "user_id", userID)
	return user, nil
}

func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = ""
	m.SessionRepo.SaveAsync("")
	m.mu.Unlock()

	m.Logger.Info("Logged out")
}

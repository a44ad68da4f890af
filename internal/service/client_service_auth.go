package service

import (
	"context"
	"sync"

	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	mu     sync.RWMutex
	userID int64

	logger *logger.Logger
}

// NewClientAuthService builds the session manager over the server adapter.
// The adapter keeps the bearer token; this service keeps the identity.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	login, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.setSession(login.User.UserID)
	a.logger.Debug().Int64("user_id", login.User.UserID).Msg("registered on server")

	return login.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	login, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.setSession(login.User.UserID)
	a.logger.Debug().Int64("user_id", login.User.UserID).Msg("logged in on server")

	return login.User, nil
}

func (a *clientAuthService) UserID() (int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.userID == 0 {
		return 0, ErrNotLoggedIn
	}
	return a.userID, nil
}

func (a *clientAuthService) LoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userID != 0
}

func (a *clientAuthService) setSession(userID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userID = userID
}

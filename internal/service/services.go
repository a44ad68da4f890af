// Package service implements the application logic of cardfolio: the
// server-side auth, card, and public-viewer services, and the client-side
// session, draft, and collection services.
package service

import (
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/store"
)

// Services bundles the server-side services behind one constructor so that
// main wires a single dependency into the transport layer.
type Services struct {
	AuthService         AuthService
	CardService         CardService
	PublicViewerService PublicViewerService
}

// NewServices constructs all server services on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg, logger),
		CardService:         NewCardService(storages.CardRepository, cfg, logger),
		PublicViewerService: NewPublicViewerService(storages.CardRepository, logger),
	}
}

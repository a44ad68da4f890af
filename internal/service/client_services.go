package service

import (
	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/store"
)

// ClientServices bundles the client-side service layer.
type ClientServices struct {
	AuthService       ClientAuthService
	DraftService      DraftService
	ImageService      ImageService
	CollectionService CollectionService
}

// NewClientServices wires the client services over the local storages and
// the server adapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.Client, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, logger)
	imageSvc := NewImageService(cfg.ImageByteCeiling)

	return &ClientServices{
		AuthService:       authSvc,
		DraftService:      NewDraftService(storages.Local, serverAdapter, imageSvc, cfg, logger),
		ImageService:      imageSvc,
		CollectionService: NewCollectionService(storages.Collection, serverAdapter, authSvc, logger),
	}
}

package http

import (
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/service"
)

type Handler struct {
	services *service.Services

	appCfg    config.App
	serverCfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		appCfg:    appCfg,
		serverCfg: serverCfg,
		logger:    logger,
	}
}

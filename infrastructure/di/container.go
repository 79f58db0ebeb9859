package di

import (
	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/domain/core/aggregates"
	"socialnet-backend/infrastructure/config"
	"socialnet-backend/infrastructure/persistence/adjfile"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Network *aggregates.Network
	Store   *adjfile.Store
	Service *services.NetworkService
}

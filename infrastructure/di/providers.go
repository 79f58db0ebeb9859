package di

import (
	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/domain/core/aggregates"
	"socialnet-backend/infrastructure/config"
	"socialnet-backend/infrastructure/persistence/adjfile"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideNetwork creates the empty in-memory network
func ProvideNetwork() *aggregates.Network {
	return aggregates.NewNetwork()
}

// ProvideStore creates the adjacency-file store
func ProvideStore(logger *zap.Logger) *adjfile.Store {
	return adjfile.NewStore(logger)
}

// ProvideNetworkService creates the network service
func ProvideNetworkService(
	network *aggregates.Network,
	store *adjfile.Store,
	logger *zap.Logger,
) *services.NetworkService {
	return services.NewNetworkService(network, store, logger)
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/forest-watch/internal/bootstrap"
	"github.com/yanqian/forest-watch/internal/domain/forest"
	"github.com/yanqian/forest-watch/internal/infra/config"
	httpiface "github.com/yanqian/forest-watch/internal/interface/http"
	"github.com/yanqian/forest-watch/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideForestConfig,
		provideCatalog,
		provideSeriesSource,
		provideRateLimiter,
		forest.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}

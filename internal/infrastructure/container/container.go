// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"github.com/forkful/garnish/internal/application/annotation"
	"github.com/forkful/garnish/internal/infrastructure/config"
	"github.com/forkful/garnish/internal/infrastructure/http/apiserver"
	"github.com/forkful/garnish/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules for the API
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// ServiceModule provides the annotation service
var ServiceModule = fx.Provide(
	annotation.NewAnnotationService,
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.New,
)

// LifecycleModule ties the server to the fx lifecycle
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, server *apiserver.APIServer, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				server.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				defer log.Sync()
				return server.Stop(ctx)
			},
		})
	},
)

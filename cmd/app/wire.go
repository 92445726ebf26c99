//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/garden-faq/internal/bootstrap"
	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	"github.com/yanqian/garden-faq/internal/infra/config"
	"github.com/yanqian/garden-faq/internal/infra/faqsource"
	httpiface "github.com/yanqian/garden-faq/internal/interface/http"
	"github.com/yanqian/garden-faq/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideSourceConfig,
		faqsource.Open,
		gardenfaq.NewLoader,
		wire.Bind(new(gardenfaq.DatabaseLoader), new(*gardenfaq.Loader)),
		gardenfaq.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

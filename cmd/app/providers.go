package main

import (
	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	"github.com/yanqian/garden-faq/internal/infra/config"
	"github.com/yanqian/garden-faq/internal/infra/faqsource"
)

func provideFAQConfig(cfg *config.Config) gardenfaq.Config {
	return cfg.FAQ.LoaderConfig()
}

func provideSourceConfig(cfg *config.Config) faqsource.Config {
	return cfg.FAQ.SourceConfig()
}

package config

import (
	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	"github.com/yanqian/garden-faq/internal/infra/faqsource"
)

// LoaderConfig maps the faq section onto the domain loader settings.
func (c FAQConfig) LoaderConfig() gardenfaq.Config {
	return gardenfaq.Config{
		LoadTimeout: c.LoadTimeout,
	}
}

// SourceConfig maps the faq section onto the document source settings.
func (c FAQConfig) SourceConfig() faqsource.Config {
	return faqsource.Config{
		Location:     c.Source,
		HTTPTimeout:  c.HTTPTimeout,
		MaxBodyBytes: c.MaxBodyBytes,
		ObjectStore: faqsource.ObjectStoreConfig{
			Endpoint:  c.ObjectStore.Endpoint,
			AccessKey: c.ObjectStore.AccessKey,
			SecretKey: c.ObjectStore.SecretKey,
			Region:    c.ObjectStore.Region,
		},
	}
}

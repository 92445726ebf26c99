package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	"github.com/yanqian/garden-faq/internal/infra/config"
	"github.com/yanqian/garden-faq/internal/infra/faqsource"
	"github.com/yanqian/garden-faq/pkg/logger"
)

// NewRootCommand builds the faqcli command tree.
func NewRootCommand() *cobra.Command {
	var source string
	root := &cobra.Command{
		Use:          "faqcli",
		Short:        "Look up answers in the gardening FAQ",
		SilenceUsage: true, // don't print usage on operational errors
		Long: `faqcli loads the gardening FAQ document (URL, s3://bucket/key or local path)
and runs the same keyword matcher the web widget uses.`,
	}
	root.PersistentFlags().StringVar(&source, "source", "", "FAQ document location (overrides faq.source / FAQ_SOURCE)")
	root.AddCommand(newSearchCommand(&source), newCategoriesCommand(&source))
	return root
}

// Execute is called by main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService builds the FAQ service from config, with --source taking precedence.
func newService(source string) (gardenfaq.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if source != "" {
		cfg.FAQ.Source = source
	}

	log := logger.NewWithWriter(os.Stderr)
	src, err := faqsource.Open(cfg.FAQ.SourceConfig())
	if err != nil {
		return nil, err
	}
	loader := gardenfaq.NewLoader(cfg.FAQ.LoaderConfig(), src, log)
	return gardenfaq.NewService(loader, log), nil
}

// Package operation implements the per-item driver that rewrites attachment metadata
package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/source"
	"github.com/walteh/remime/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for rewrite operations
type Operator interface {
	// Apply transforms the items and persists the result
	Apply(ctx context.Context) error
	// Preview is a dry run: it reports what a run would change without writing anything
	Preview(ctx context.Context) ([]status.AttachmentInfo, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the rewrite configuration
	Config *config.Config
	// Source materializes the pipeline items
	Source source.Source
	// Reporter tracks per-attachment status
	Reporter status.Reporter
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Source == nil {
		return nil, errors.Errorf("source is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &operator{
		cfg:      opts.Config,
		source:   opts.Source,
		reporter: opts.Reporter,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	cfg      *config.Config
	source   source.Source
	reporter status.Reporter
}

func (o *operator) Apply(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("source", o.source.Describe()).Msg("applying mime rewrite")

	items, err := o.source.Items(ctx)
	if err != nil {
		return errors.Errorf("loading items: %w", err)
	}

	out, err := ProcessItems(ctx, o.cfg, items, o.reporter)
	if err != nil {
		return err
	}

	if o.cfg.Output == "" {
		return item.Encode(os.Stdout, out)
	}
	if err := item.Write(ctx, o.cfg.Output, out); err != nil {
		return errors.Errorf("writing output: %w", err)
	}

	return nil
}

func (o *operator) Preview(ctx context.Context) ([]status.AttachmentInfo, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("source", o.source.Describe()).Msg("previewing mime rewrite")

	items, err := o.source.Items(ctx)
	if err != nil {
		return nil, errors.Errorf("loading items: %w", err)
	}

	if _, err := ProcessItems(ctx, o.cfg, items, o.reporter); err != nil {
		return nil, err
	}

	return o.reporter.ListAttachments(ctx), nil
}

package integrations

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/integrations/webproduct"
	"droscher.com/BrewLog/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type Integration interface {
	LookupBean(ctx context.Context, pageURL string) (*model.BeanDraft, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == webproduct.IntegrationName {
		return webproduct.NewWebProductIntegration(logger)
	}

	return nil
}

// Chain asks each integration in turn and returns the first draft found.
type Chain []Integration

func NewChain(names []string, logger *zap.Logger) (Chain, error) {
	chain := make(Chain, 0, len(names))

	for _, name := range names {
		integration := GetIntegration(name, logger)
		if integration == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, name)
		}

		chain = append(chain, integration)
	}

	return chain, nil
}

func (c Chain) LookupBean(ctx context.Context, pageURL string) (*model.BeanDraft, error) {
	var errs error

	for _, integration := range c {
		draft, err := integration.LookupBean(ctx, pageURL)
		if err == nil {
			return draft, nil
		}

		errs = multierr.Append(errs, err)
	}

	if errs == nil {
		errs = fmt.Errorf("%w: none configured", ErrUnknownIntegration)
	}

	return nil, errs
}

package checkers

import (
	"context"
	"errors"
)

// ModelChecker reports whether a model provider was configured at startup.
// It does not call the provider: probes must stay free.
type ModelChecker struct {
	provider string
	ready    bool
}

func NewModelChecker(provider string, ready bool) *ModelChecker {
	return &ModelChecker{provider: provider, ready: ready}
}

func (c *ModelChecker) Name() string { return "model:" + c.provider }

func (c *ModelChecker) Check(context.Context) error {
	if !c.ready {
		return errors.New("model provider is not configured")
	}
	return nil
}

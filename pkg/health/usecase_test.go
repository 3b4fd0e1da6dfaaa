package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stub struct {
	name string
	err  error
}

func (s stub) Name() string                { return s.name }
func (s stub) Check(context.Context) error { return s.err }

func TestReadyRunsEveryChecker(t *testing.T) {
	svc := NewService(stub{name: "postgres", err: errors.New("down")}, nil, stub{name: "model:gemini"})

	statuses, ready := svc.Ready(context.Background())
	assert.False(t, ready)
	assert.Equal(t, []Status{
		{Name: "postgres", OK: false, Error: "down"},
		{Name: "model:gemini", OK: true},
	}, statuses)
}

func TestReadyWithoutCheckers(t *testing.T) {
	statuses, ready := NewService().Ready(context.Background())
	assert.True(t, ready)
	assert.Empty(t, statuses)
}

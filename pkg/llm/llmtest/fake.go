// Package llmtest provides a scripted llm.Model for tests.
package llmtest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
)

// Fake returns canned replies and records every request.
type Fake struct {
	// Reply is returned when no per-capability reply matches.
	Reply json.RawMessage
	// ByName maps llm.Request.Name to a reply.
	ByName map[string]json.RawMessage
	Err    error

	mu    sync.Mutex
	calls []llm.Request
}

// Echo returns a Fake that always replies with v encoded as JSON.
func Echo(v any) *Fake {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &Fake{Reply: b}
}

// Failing returns a Fake whose every call fails with err.
func Failing(err error) *Fake { return &Fake{Err: err} }

// On sets the reply for one capability and returns the fake for chaining.
func (f *Fake) On(name string, v any) *Fake {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ByName == nil {
		f.ByName = map[string]json.RawMessage{}
	}
	f.ByName[name] = b
	return f
}

func (f *Fake) Generate(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if r, ok := f.ByName[req.Name]; ok {
		return r, nil
	}
	return f.Reply, nil
}

// Calls returns a copy of the recorded requests.
func (f *Fake) Calls() []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.Request(nil), f.calls...)
}

// CallCount returns how many requests reached the model.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Last returns the most recent request.
func (f *Fake) Last() (llm.Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return llm.Request{}, false
	}
	return f.calls[len(f.calls)-1], true
}

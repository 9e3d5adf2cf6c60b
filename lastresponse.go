// lastresponse.go
// ---------------
// The last-response cache, scoped to an execution context. Instead of a
// shared mutable field on the client, the slot travels in a
// context.Context: each goroutine (or request-handling task) installs its
// own slot with WithLastResponse, so concurrent calls on the same client
// never observe or overwrite each other's cached response.
package specwire

import (
	"context"
	"sync"
)

type contextKey struct {
	name string
}

var lastResponseKey = &contextKey{"last_response"}

// lastResponseSlot holds the most recent raw response for one execution
// context. Overwrite-only; never merged or appended.
type lastResponseSlot struct {
	mu   sync.Mutex
	resp *RawResponse
}

// WithLastResponse installs a fresh last-response slot on the context.
// Calls dispatched with the returned context record their raw response
// into the slot, retrievable with LastResponse.
func WithLastResponse(ctx context.Context) context.Context {
	return context.WithValue(ctx, lastResponseKey, &lastResponseSlot{})
}

// LastResponse returns the most recent raw response recorded in this
// context's slot. ok is false before any call completed in this context,
// or when no slot was installed; a stale value from another context is
// never returned.
func LastResponse(ctx context.Context) (resp *RawResponse, ok bool) {
	slot, installed := ctx.Value(lastResponseKey).(*lastResponseSlot)
	if !installed {
		return nil, false
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.resp == nil {
		return nil, false
	}
	return slot.resp, true
}

// recordLastResponse overwrites the context's slot, if one is installed.
func recordLastResponse(ctx context.Context, resp *RawResponse) {
	slot, installed := ctx.Value(lastResponseKey).(*lastResponseSlot)
	if !installed {
		return
	}
	slot.mu.Lock()
	slot.resp = resp
	slot.mu.Unlock()
}

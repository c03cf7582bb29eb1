package guard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Group is an errgroup.Group whose goroutines recover panics. A panicking
// goroutine counts as failed with a *PanicError.
//
// The zero Group is valid and does not cancel on error.
type Group struct {
	once sync.Once
	eg   *errgroup.Group
}

// WithContext returns a new Group and an associated Context derived from ctx.
// The derived Context is canceled the first time a function passed to Go
// returns a non-nil error or panics, or the first time Wait returns.
func WithContext(ctx context.Context) (*Group, context.Context) {
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{eg: eg}, ctx
}

func (g *Group) group() *errgroup.Group {
	g.once.Do(func() {
		if g.eg == nil {
			g.eg = new(errgroup.Group)
		}
	})
	return g.eg
}

// Go calls fn in a new goroutine under Do.
func (g *Group) Go(fn func() error) {
	g.group().Go(func() error { return Do(fn) })
}

// SetLimit limits the number of active goroutines; see errgroup.Group.SetLimit.
func (g *Group) SetLimit(n int) {
	g.group().SetLimit(n)
}

// Wait blocks until all goroutines have returned and yields the first
// non-nil error, which is a *PanicError if that goroutine panicked.
func (g *Group) Wait() error {
	return g.group().Wait()
}

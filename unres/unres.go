// Package unres is the deferred-resolution queue. Checks whose outcome
// depends on the rest of the tree (reference targets, when/must
// conditions) are appended here during the walk and drained through an
// external Resolver once every node has been visited, so no node is
// resolved before everything it could reference exists.
package unres

import (
	"context"
	"fmt"

	"github.com/yangkit/validator/data"
)

// Kind is the kind of deferred resolution an item needs.
type Kind int

const (
	// Leafref defers resolving a leafref target.
	Leafref Kind = iota
	// InstID defers resolving an instance-identifier target.
	InstID
	// When defers evaluating a when condition.
	When
	// Must defers evaluating a must constraint.
	Must
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Leafref:
		return "leafref"
	case InstID:
		return "instance-identifier"
	case When:
		return "when"
	case Must:
		return "must"
	default:
		return "unknown"
	}
}

// Item is one deferred check.
type Item struct {
	Node *data.Node
	Kind Kind
}

// Resolver performs the deferred checks. Implementations live outside this
// module: a leafref/instance-identifier target resolver and a when/must
// expression evaluator. The error reason is opaque to the validator.
type Resolver interface {
	Resolve(ctx context.Context, node *data.Node, kind Kind) error
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, node *data.Node, kind Kind) error

// Resolve calls the wrapped function.
func (f ResolverFunc) Resolve(ctx context.Context, node *data.Node, kind Kind) error {
	return f(ctx, node, kind)
}

// Queue is the per-walk collection of deferred checks. It is owned by the
// driver for the duration of one validation run and is not safe for
// concurrent mutation; independent runs use independent queues.
type Queue struct {
	items []Item
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends a deferred check. Duplicate (node, kind) pairs are tolerated;
// the resolver must handle re-resolution.
func (q *Queue) Add(node *data.Node, kind Kind) {
	q.items = append(q.items, Item{Node: node, Kind: kind})
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns the queued items in insertion order. The slice is owned by
// the queue and valid until the next Add.
func (q *Queue) Items() []Item {
	return q.items
}

// Drain resolves every queued item and empties the queue. It stops at the
// first resolver failure; the remaining items stay queued.
func (q *Queue) Drain(ctx context.Context, r Resolver) error {
	for len(q.items) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		it := q.items[0]
		if err := r.Resolve(ctx, it.Node, it.Kind); err != nil {
			return fmt.Errorf("resolving %s for %s: %w", it.Kind, it.Node.Path(), err)
		}
		q.items = q.items[1:]
	}
	return nil
}

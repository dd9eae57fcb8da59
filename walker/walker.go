// Package walker traverses data trees in document order.
package walker

import (
	"errors"

	"github.com/yangkit/validator/data"
)

// Skip prunes the walk below the current node. The visit function returns
// it to keep walking with the next sibling; it is safe to free the
// current node first, the walker keeps a pre-visit copy of its sibling
// link.
var Skip = errors.New("walker: skip subtree")

// VisitFunc is called for every visited node. Returning nil descends into
// the node's children, Skip moves on to the next sibling, and any other
// error stops the walk and propagates. A visit may free later siblings of
// the current node; the walker re-reads the sibling link afterwards so
// freed siblings are never visited. A visit that frees the current node
// itself must return Skip and must not free its siblings in the same call.
type VisitFunc func(n *data.Node) error

// Walk visits first and its following siblings in document order,
// descending depth-first into children.
func Walk(first *data.Node, fn VisitFunc) error {
	for n := first; n != nil; {
		// pre-visit copy, in case fn frees n and takes its links with it
		next := n.Next

		switch err := fn(n); {
		case err == nil:
			if n.Child != nil {
				if err := Walk(n.Child, fn); err != nil {
					return err
				}
			}
			next = n.Next
		case errors.Is(err, Skip):
			// do not descend; a surviving node carries the live sibling
			// link, possibly relinked past freed siblings
			if !n.Freed() {
				next = n.Next
			}
		default:
			return err
		}

		n = next
	}
	return nil
}

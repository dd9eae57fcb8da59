package validate

import (
	"context"
	"fmt"

	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
	"github.com/yangkit/validator/unres"
)

// Value resolves a leaf's reference value immediately instead of through
// the deferred queue. It is the narrow entry point for values replaced
// after the main pass, when the rest of the tree already exists.
//
// A leafref with an empty resolved slot and an instance-identifier whose
// type requires an existing target are handed to the resolver right away.
// Under filter, edit, get and get-config payloads an unresolved reference
// is left unresolved: those payloads may reference targets that
// legitimately do not (yet) exist. The failure reason of the resolver is
// opaque here.
func Value(ctx context.Context, node *data.Node, opts *yv.Options, r unres.Resolver) error {
	sch := node.Schema
	if !sch.IsLeafy() || sch.Type == nil {
		// nothing to check
		return nil
	}

	switch sch.Type.Base {
	case schema.TypeLeafref:
		if node.Value.Target == nil && !opts.IncompleteTree() {
			if err := r.Resolve(ctx, node, unres.Leafref); err != nil {
				return fmt.Errorf("leafref at %s: %w", node.Path(), err)
			}
		}

	case schema.TypeInstanceID:
		if !opts.IncompleteTree() && sch.Type.RequireInstance {
			if err := r.Resolve(ctx, node, unres.InstID); err != nil {
				return fmt.Errorf("instance-identifier at %s: %w", node.Path(), err)
			}
		}
	}

	return nil
}

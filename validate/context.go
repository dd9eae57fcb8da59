package validate

import (
	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
	"github.com/yangkit/validator/unres"
)

// ContextValidator performs the per-node structural gating checks: feature
// availability, read/write applicability for the current operation,
// deferred-constraint registration and sibling ordering of RPC payloads.
// The checks are independent; the first failing one aborts the node.
type ContextValidator struct{}

// NewContextValidator creates a ContextValidator.
func NewContextValidator() *ContextValidator {
	return &ContextValidator{}
}

// Validate runs the context checks for one node. A nil return means the
// node passed; otherwise the issues describe the failure and the tree
// walk must abort.
func (v *ContextValidator) Validate(node *data.Node, opts *yv.Options, q *unres.Queue) []yv.Issue {
	sch := node.Schema

	// the instantiated schema node must be enabled by its if-features
	if sch.FeatureDisabled() {
		return []yv.Issue{
			yv.Error(yv.DiagInappropriateElement).
				At(node.Path()).
				Node(sch.Name).
				Detail("disabled by if-feature").
				Build(),
		}
	}

	// schedule leafref and instance-identifier values for resolution once
	// the whole tree has been visited
	if sch.IsLeafy() && sch.Type != nil && !opts.IncompleteTree() {
		// drop stale resolution results from a previous pass
		node.Value.Invalidate()

		switch sch.Type.Base {
		case schema.TypeLeafref:
			q.Add(node, unres.Leafref)
		case schema.TypeInstanceID:
			q.Add(node, unres.InstID)
		}
	}

	// schedule all relevant when conditions
	if opts.EvalWhen() && sch.When {
		q.Add(node, unres.When)
	}

	// state data is never legal inside a configuration-shaped payload
	if opts.ConfigShaped() && !sch.Config {
		return []yv.Issue{
			yv.Error(yv.DiagInappropriateElement).
				At(node.Path()).
				Node(sch.Name).
				Detail("state data in configuration payload").
				Build(),
		}
	}

	// children of an RPC input or output must appear in declared order
	if node.Unvalidated && sch.InRPC() && node.Prev != nil {
		if later := declaredAfter(sch, node.Prev.Schema); later {
			return []yv.Issue{
				yv.Error(yv.DiagWrongSiblingOrder).
					At(node.Path()).
					Node(sch.Name).
					Detail(node.Prev.Schema.Name).
					Build(),
			}
		}
	}

	return nil
}

// declaredAfter reports whether other is declared after sch in their
// enclosing schema scope, scanning the declared order forward from sch
// through choice and case wrappers.
func declaredAfter(sch, other *schema.Node) bool {
	parent := sch.DataParent()
	if parent == nil {
		return false
	}
	seen := false
	for _, def := range parent.DataDefinitions() {
		if def == sch {
			seen = true
			continue
		}
		if seen && def == other {
			return true
		}
	}
	return false
}

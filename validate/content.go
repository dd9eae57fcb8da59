package validate

import (
	"errors"

	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
	"github.com/yangkit/validator/unres"
)

// ErrDiscard reports that the current node is redundant in a canonicalized
// subtree filter. It is not a validation failure: the caller must unlink
// and free the node and continue the walk with no diagnostic.
var ErrDiscard = errors.New("discard redundant filter node")

// MergedInto is the ErrDiscard variant raised when the discarded node was
// first merged into a surviving sibling. The merge can relocate children
// that have not been validated yet into the survivor; the driver has to
// give those their own pass when the survivor already had its turn.
type MergedInto struct {
	Survivor *data.Node
}

func (e *MergedInto) Error() string {
	return "discard filter node merged into sibling"
}

// Unwrap ties the variant to ErrDiscard for errors.Is.
func (e *MergedInto) Unwrap() error { return ErrDiscard }

// ContentValidator performs the per-node content checks: key completeness,
// mandatory content, choice exclusivity, instance uniqueness (with the
// filter-mode merge fallback) and status obsolescence.
type ContentValidator struct {
	// Mandatory overrides the built-in mandatory-content evaluation.
	Mandatory MandatoryChecker

	// Metrics, when set, counts filter merges.
	Metrics *yv.Metrics
}

// NewContentValidator creates a ContentValidator with the built-in
// mandatory-content check.
func NewContentValidator() *ContentValidator {
	return &ContentValidator{Mandatory: builtinMandatory{}}
}

// Validate runs the content checks for one node.
//
// Outcomes: (nil, nil) success; issues describe a hard failure aborting
// the walk; ErrDiscard asks the caller to unlink and free the node
// silently (filter mode only). Any other error is an internal merge
// failure. Nodes already validated in a prior pass skip everything except
// the must-condition deferral.
func (v *ContentValidator) Validate(node *data.Node, opts *yv.Options, q *unres.Queue) ([]yv.Issue, error) {
	sch := node.Schema

	if node.Unvalidated {
		// presence and correct order of all keys in case of a list
		if sch.Kind == schema.List && !opts.Filter() && !opts.Retrieval() {
			if issues := Keys(node); issues != nil {
				return issues, nil
			}
		}

		// mandatory children
		if (sch.Kind == schema.Container || sch.Kind == schema.List) && !opts.IncompleteTree() {
			if issue := v.checkMandatory(node); issue != nil {
				return []yv.Issue{*issue}, nil
			}
		}

		start := node.FirstSibling()

		// no sibling data from a different case of an enclosing choice
		if !opts.Filter() {
			if issue := checkCaseExclusivity(node, start); issue != nil {
				return []yv.Issue{*issue}, nil
			}
		}

		// instance multiplicity; keep this last, in filter mode it can
		// modify the tree
		switch sch.Kind {
		case schema.Container, schema.Leaf, schema.Anyxml:
			if issues, err := v.checkSingleInstance(node, start, opts); issues != nil || err != nil {
				return issues, err
			}
		case schema.List, schema.LeafList:
			if issues, err := v.checkInstanceUniqueness(node, start, opts); issues != nil || err != nil {
				return issues, err
			}
		}

		if opts.CheckObsolete {
			if issue := checkObsolete(node); issue != nil {
				return []yv.Issue{*issue}, nil
			}
		}
	}

	// must conditions apply to every pass
	if sch.Must {
		q.Add(node, unres.Must)
	}

	return nil, nil
}

func (v *ContentValidator) checkMandatory(node *data.Node) *yv.Issue {
	checker := v.Mandatory
	if checker == nil {
		checker = builtinMandatory{}
	}
	missing := checker.Missing(node)
	if missing == nil {
		return nil
	}

	kind := yv.DiagMissingElement
	if missing.Kind == schema.List || missing.Kind == schema.LeafList {
		kind = yv.DiagTooFewInstances
	}
	issue := yv.Error(kind).
		At(node.Path()).
		Node(missing.Name).
		Within(node.Schema.Name).
		Build()
	return &issue
}

// checkCaseExclusivity walks the node's schema ancestry through case and
// choice wrappers and, for each enclosing choice, verifies no sibling
// instantiates that choice through a different case.
func checkCaseExclusivity(node *data.Node, start *data.Node) *yv.Issue {
	ch := node.Schema

	for ch.Parent != nil && (ch.Parent.Kind == schema.Case || ch.Parent.Kind == schema.Choice) {
		var cs *schema.Node
		if ch.Parent.Kind == schema.Choice {
			cs = nil
			ch = ch.Parent
		} else {
			cs = ch.Parent
			ch = ch.Parent.Parent
		}

		for diter := start; diter != nil; diter = diter.Next {
			if diter == node {
				continue
			}

			// find the sibling's ancestor at the level of this choice
			for siter := diter.Schema.Parent; siter != nil; siter = siter.Parent {
				if siter.Kind == schema.Choice {
					if siter == ch {
						// sibling sits directly under our choice through
						// another shorthand case
						issue := caseConflict(node, ch)
						return &issue
					}
					continue
				}

				if siter.Kind == schema.Case {
					if siter.Parent != ch {
						continue
					}
					if cs == nil || cs != siter {
						issue := caseConflict(node, ch)
						return &issue
					}
				}

				// the sibling belongs to some other subtree
				break
			}
		}
	}
	return nil
}

func caseConflict(node *data.Node, choice *schema.Node) yv.Issue {
	return yv.Error(yv.DiagConflictingCaseData).
		At(node.Path()).
		Node(node.Schema.Name).
		Detail(choice.Name).
		Build()
}

// checkSingleInstance enforces the instance count of single-instance kinds
// (container, leaf, anyxml). Outside filter mode a second same-schema
// sibling is a hard failure; in filter mode equivalent duplicates merge
// and the more general of two non-equivalent ones survives.
func (v *ContentValidator) checkSingleInstance(node, start *data.Node, opts *yv.Options) ([]yv.Issue, error) {
	sch := node.Schema

	for diter := start; diter != nil; diter = diter.Next {
		if diter.Schema != sch || diter == node {
			continue
		}

		if !opts.Filter() {
			within := "data tree"
			if sch.Parent != nil {
				within = sch.Parent.Name
			}
			return []yv.Issue{
				yv.Error(yv.DiagTooManyInstances).
					At(node.Path()).
					Node(sch.Name).
					Within(within).
					Build(),
			}, nil
		}

		// normalize the filter
		switch sch.Kind {
		case schema.Container:
			if FilterCompare(diter, node) {
				// merge the two containers, diter will be kept and node
				// removed by the caller
				if err := FilterMerge(diter, node); err != nil {
					return nil, err
				}
				v.recordMerge()
				return nil, &MergedInto{Survivor: diter}
			}
			if diter.Child == nil {
				// diter selects all such containers, node only a subset
				return nil, ErrDiscard
			}
			if node.Child == nil {
				// node selects everything, diter a subset
				diter.Free()
			}
			// keep them as they are
			return nil, nil

		case schema.Leaf:
			if !diter.Value.IsSet() && node.Value.IsSet() {
				// the earlier instance is a selection node and the new
				// one a content match, which selects too: keep the new
				diter.Free()
				return nil, nil
			}
			if !node.Value.IsSet() || diter.Value.Canonical == node.Value.Canonical {
				// keep the earlier instance, drop the new one
				return nil, ErrDiscard
			}
			// two different content-match values coexist

		case schema.Anyxml:
			// filtering on anyxml content is not allowed, so anyxml is
			// always a selection node and a second instance is redundant
			return nil, ErrDiscard
		}

		// we are done
		break
	}
	return nil, nil
}

// checkInstanceUniqueness enforces uniqueness of list and leaf-list
// instances. Outside filter mode two instances with equal keys or an
// equal unique combination are a hard failure; in filter mode equivalent
// instances merge and a leaf-list selection node yields to a content
// match.
func (v *ContentValidator) checkInstanceUniqueness(node, start *data.Node, opts *yv.Options) ([]yv.Issue, error) {
	sch := node.Schema

	// get or get-config replies come from the server, uniqueness is
	// trusted there
	if opts.Retrieval() {
		return nil, nil
	}

	// locate the first other instance of the same schema
	first := (*data.Node)(nil)
	for diter := start; diter != nil; diter = diter.Next {
		if diter != node && diter.Schema == sch {
			first = diter
			break
		}
	}

	for diter := first; diter != nil; diter = diter.Next {
		if diter.Schema != sch || diter == node || diter.Unvalidated {
			// unvalidated siblings get compared when their own turn comes
			continue
		}

		if opts.Filter() {
			if FilterCompare(diter, node) {
				if err := FilterMerge(diter, node); err != nil {
					return nil, err
				}
				v.recordMerge()
				return nil, &MergedInto{Survivor: diter}
			}
			if sch.Kind == schema.LeafList {
				// unlike lists, leaf-lists can still be optimized when
				// one of the two is a selection node: the content match
				// limits the data, so it is the one to keep
				if !diter.Value.IsSet() {
					diter.Free()
					break
				}
				if !node.Value.IsSet() {
					return nil, ErrDiscard
				}
			}
			continue
		}

		if data.Compare(diter, node, true) {
			return []yv.Issue{
				yv.Error(yv.DiagDuplicateListInstance).
					At(node.Path()).
					Node(sch.Name).
					Build(),
			}, nil
		}
	}
	return nil, nil
}

func (v *ContentValidator) recordMerge() {
	if v.Metrics != nil {
		v.Metrics.RecordFilterMerge()
	}
}

// checkObsolete rejects instantiated obsolete definitions: the node's own
// schema and its non-instantiable ancestors, the typedef derivation chain
// of a leaf's type, and an identity value more obsolete than the node
// referencing it.
func checkObsolete(node *data.Node) *yv.Issue {
	sch := node.Schema

	for siter := sch; ; {
		if siter.Status == schema.StatusObsolete {
			issue := yv.Error(yv.DiagObsoleteData).
				At(node.Path()).
				Node(sch.Name).
				Detail(siter.Name).
				Build()
			return &issue
		}
		siter = siter.Parent
		if siter == nil || siter.HasInstance() {
			break
		}
	}

	if !sch.IsLeafy() {
		return nil
	}

	for _, tpdf := range sch.DerivationChain() {
		if tpdf.Status == schema.StatusObsolete {
			issue := yv.Error(yv.DiagObsoleteType).
				At(node.Path()).
				Node(sch.Name).
				Detail(tpdf.Name).
				Build()
			return &issue
		}
	}

	if node.Value.Kind == data.ValueIdentity && node.Value.Identity != nil {
		if node.Value.Identity.Status > sch.Status {
			issue := yv.Error(yv.DiagObsoleteType).
				At(node.Path()).
				Node(sch.Name).
				Detail(node.Value.Identity.Name).
				Build()
			return &issue
		}
	}

	return nil
}

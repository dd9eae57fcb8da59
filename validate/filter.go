package validate

import (
	"errors"

	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/pool"
	"github.com/yangkit/validator/schema"
)

// errFilterMerge is the internal failure of a merge attempt. It is
// distinct from both validation outcomes: it aborts the run like an
// infrastructure error, not like a diagnostic.
var errFilterMerge = errors.New("filter merge: nodes have different schemas")

// selectionOrContainment reports whether a filter child widens the
// selection rather than narrowing it: a valueless leaf or leaf-list, a
// contentless anyxml, or any container or list. Content-match leaves
// (concrete values) are the complement.
func selectionOrContainment(n *data.Node) bool {
	switch n.Schema.Kind {
	case schema.Leaf, schema.LeafList:
		return !n.Value.IsSet()
	case schema.Anyxml:
		return n.Child == nil
	case schema.Container, schema.List:
		return true
	default:
		return false
	}
}

// contentMatch reports whether a filter child is a content-match node: a
// leaf or leaf-list carrying a concrete value.
func contentMatch(n *data.Node) bool {
	return n.Schema.IsLeafy() && n.Value.IsSet()
}

// FilterCompare reports whether two subtree-filter nodes select the same
// data.
//
// Nodes of different schemas never do. Leafs and leaf-lists select the
// same data iff both carry the same concrete value, or neither carries
// one. Containers and lists select the same data iff their content-match
// children agree exactly (same schema and value, same count); selection
// and containment children are ignored here, they affect merging but not
// equivalence. Remaining kinds compare by schema identity alone.
func FilterCompare(first, second *data.Node) bool {
	if first == nil || second == nil || first.Schema != second.Schema {
		return false
	}

	switch first.Schema.Kind {
	case schema.Container, schema.List:
		// every content-match child of first needs a counterpart in second
		c1 := 0
		for d1 := first.Child; d1 != nil; d1 = d1.Next {
			if !contentMatch(d1) {
				continue
			}
			match := false
			for d2 := second.Child; d2 != nil; d2 = d2.Next {
				if d2.Schema != d1.Schema || !d2.Value.IsSet() {
					continue
				}
				if d2.Value.Canonical != d1.Value.Canonical {
					continue
				}
				match = true
				c1++
			}
			if !match {
				return false
			}
		}
		// count the content-match children of second to detect ones that
		// have no counterpart in first
		c2 := 0
		for d2 := second.Child; d2 != nil; d2 = d2.Next {
			if contentMatch(d2) {
				c2++
			}
		}
		if c1 != c2 {
			return false
		}

	case schema.Leaf, schema.LeafList:
		if first.Value.IsSet() != second.Value.IsSet() {
			return false
		}
		if first.Value.Canonical != second.Value.Canonical {
			return false
		}

	default:
		// no more tests are needed
	}
	return true
}

// FilterMerge combines from into to so that to subsequently selects the
// union of what both selected. The caller must have established
// equivalence with FilterCompare and discards from afterwards.
//
// A childless from is a pure selection node ("everything under this
// path") and absorbs to's children. Otherwise the selection and
// containment children of both sides are merged one level deep, recursing
// only into matched container/list pairs; content-match children are
// never touched since equivalence already guarantees they agree.
func FilterMerge(to, from *data.Node) error {
	if to == nil || from == nil || to.Schema != from.Schema {
		return errFilterMerge
	}

	if to.Schema.Kind != schema.Container && to.Schema.Kind != schema.List {
		// leafs carry no mergeable children
		return nil
	}

	switch {
	case from.Child == nil:
		// from selects everything under this path, so to must too
		to.RemoveChildren()

	case to.Child == nil:
		// to is already a pure selection node and absorbs from

	default:
		return mergeChildren(to, from)
	}
	return nil
}

// mergeChildren merges the selection and containment children of from into
// to. Both nodes are known to have children.
func mergeChildren(to, from *data.Node) error {
	s1 := pool.AcquireNodes()
	defer pool.ReleaseNodes(s1)
	s2 := pool.AcquireNodes()
	defer pool.ReleaseNodes(s2)

	for d := to.Child; d != nil; d = d.Next {
		if selectionOrContainment(d) {
			*s1 = append(*s1, d)
		}
	}
	for d := from.Child; d != nil; d = d.Next {
		if selectionOrContainment(d) {
			*s2 = append(*s2, d)
		}
	}

	switch {
	case len(*s1) == 0:
		// to already selects all content, nothing to limit

	case len(*s2) == 0:
		// from selects all content, so widen to by dropping its
		// selection and containment children
		for _, d := range *s1 {
			d.Free()
		}

	default:
		for _, fd := range *s2 {
			relocate := false
			matched := false
			for i, td := range *s1 {
				if td == nil || td.Schema != fd.Schema {
					continue
				}

				if fd.Schema.Kind == schema.Container || fd.Schema.Kind == schema.List {
					if FilterCompare(fd, td) {
						if err := FilterMerge(td, fd); err != nil {
							return err
						}
					} else if fd.Child == nil {
						// fd is a selection node and td selects a
						// subset: the selection node wins
						td.Free()
						(*s1)[i] = nil
						relocate = true
						continue
					} else if td.Child == nil {
						// td is already a selection node, fd adds nothing
					} else {
						// different subtrees, keep searching for some
						// other matching instance
						continue
					}
				}
				// leafy and anyxml partition members can only be
				// selection nodes, never duplicate them

				matched = true
				break
			}

			if relocate || !matched {
				fd.Unlink()
				to.AppendChild(fd)
			}
		}
	}
	return nil
}

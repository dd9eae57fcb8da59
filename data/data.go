// Package data holds the instance-tree model the validator operates on.
// Trees are built by an external parser or editor; validation mutates them
// only in filter mode (merging and dropping redundant filter nodes).
package data

import (
	"strings"

	"github.com/yangkit/validator/schema"
)

// ValueKind tags the representation stored in a leaf or leaf-list value.
type ValueKind int

const (
	// ValueUnset means no value is present. In a subtree filter this is a
	// selection node that matches any value.
	ValueUnset ValueKind = iota
	// ValueCanonical is a canonical string representation.
	ValueCanonical
	// ValueLeafref is a canonical value with a resolved leafref target.
	ValueLeafref
	// ValueInstanceID is a canonical value with a resolved
	// instance-identifier target.
	ValueInstanceID
	// ValueIdentity is a resolved identity reference.
	ValueIdentity
)

// Value is the tagged value of a leaf or leaf-list instance.
type Value struct {
	// Kind tags which representation is valid.
	Kind ValueKind

	// Canonical is the canonical string form, "" when Kind is ValueUnset.
	Canonical string

	// Target is the resolved data node for ValueLeafref and
	// ValueInstanceID, nil while unresolved.
	Target *Node

	// Identity is the resolved identity for ValueIdentity.
	Identity *schema.Identity
}

// IsSet reports whether a value is present. A filter selection node has no
// value and matches any content.
func (v *Value) IsSet() bool {
	return v.Kind != ValueUnset
}

// Invalidate drops any resolution result so a later pass resolves the
// value again, keeping the canonical form.
func (v *Value) Invalidate() {
	if v.Kind == ValueLeafref || v.Kind == ValueInstanceID {
		v.Target = nil
	}
}

// Node is one instance of a schema-defined element in a data tree.
//
// Siblings form a doubly linked ordered sequence; a parent owns its
// children through the first/last child pointers. Destroying a parent
// destroys its whole subtree.
type Node struct {
	// Schema is the defining schema node. It is never owned by the data
	// tree and never nil on a valid node.
	Schema *schema.Node

	// Parent is the owning node, nil at top level.
	Parent *Node

	// Prev and Next are the sibling links. Prev is nil on the first
	// sibling, Next on the last.
	Prev, Next *Node

	// Child and LastChild bound the owned child sequence.
	Child, LastChild *Node

	// Value is the instance value of a leaf or leaf-list.
	Value Value

	// Unvalidated is set by the tree builder and cleared once the node
	// passes the context and content checks of the current pass.
	Unvalidated bool

	// freed marks a destroyed node. A freed node has lost its links, so
	// the walker needs the flag to tell it apart from a live node whose
	// later siblings were removed.
	freed bool
}

// New creates a detached node for the given schema.
func New(s *schema.Node) *Node {
	return &Node{Schema: s, Unvalidated: true}
}

// NewLeaf creates a detached leaf or leaf-list node with a canonical value.
func NewLeaf(s *schema.Node, canonical string) *Node {
	n := New(s)
	n.Value = Value{Kind: ValueCanonical, Canonical: canonical}
	return n
}

// FirstSibling returns the head of the node's sibling sequence. With a
// parent this is a field lookup; top-level siblings are walked back to the
// front.
func (n *Node) FirstSibling() *Node {
	if n.Parent != nil {
		return n.Parent.Child
	}
	s := n
	for s.Prev != nil {
		s = s.Prev
	}
	return s
}

// AppendChild links c as the last child of n. c must be detached.
func (n *Node) AppendChild(c *Node) *Node {
	c.Parent = n
	c.Prev = n.LastChild
	c.Next = nil
	if n.LastChild != nil {
		n.LastChild.Next = c
	} else {
		n.Child = c
	}
	n.LastChild = c
	return n
}

// Append builds a tree: it appends every node as a child of n and returns
// n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// InsertAfter links c as the sibling following n.
func (n *Node) InsertAfter(c *Node) {
	c.Parent = n.Parent
	c.Prev = n
	c.Next = n.Next
	if n.Next != nil {
		n.Next.Prev = c
	} else if n.Parent != nil {
		n.Parent.LastChild = c
	}
	n.Next = c
}

// Unlink detaches the node (with its whole subtree) from its parent and
// siblings. The node keeps its children.
func (n *Node) Unlink() {
	if n.Parent != nil {
		if n.Parent.Child == n {
			n.Parent.Child = n.Next
		}
		if n.Parent.LastChild == n {
			n.Parent.LastChild = n.Prev
		}
	}
	if n.Prev != nil {
		n.Prev.Next = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	}
	n.Parent = nil
	n.Prev = nil
	n.Next = nil
}

// Free unlinks the node, marks it and its whole subtree destroyed, and
// severs the subtree's internal references so the garbage collector can
// reclaim it even if stale pointers to the parent tree remain.
func (n *Node) Free() {
	n.freed = true
	n.Unlink()
	for c := n.Child; c != nil; {
		next := c.Next
		c.Free()
		c = next
	}
	n.Child = nil
	n.LastChild = nil
	n.Value.Target = nil
}

// Freed reports whether the node has been destroyed with Free. A merely
// unlinked node is not freed; it can be relinked elsewhere.
func (n *Node) Freed() bool {
	return n.freed
}

// RemoveChildren frees every child of the node, turning a filter
// containment node into a pure selection node.
func (n *Node) RemoveChildren() {
	for n.Child != nil {
		n.Child.Free()
	}
}

// Path returns the data path of the node, "/name/name" style, for
// anchoring diagnostics.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var names []string
	for s := n; s != nil; s = s.Parent {
		names = append(names, s.Schema.Name)
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

// findLeaf returns the node's child instance of the given leaf schema.
func (n *Node) findLeaf(s *schema.Node) *Node {
	for c := n.Child; c != nil; c = c.Next {
		if c.Schema == s {
			return c
		}
	}
	return nil
}

// Compare reports whether two list or leaf-list instances of the same
// schema are structurally equal. Leaf-lists compare values; lists compare
// all key leaves and, when unique is set, additionally report equality
// when every leaf of any unique-constraint group matches.
func Compare(a, b *Node, unique bool) bool {
	if a == nil || b == nil || a.Schema != b.Schema {
		return false
	}

	switch a.Schema.Kind {
	case schema.LeafList:
		return a.Value.Canonical == b.Value.Canonical

	case schema.List:
		// Vacuously equal for keyless lists, matching the key-by-key
		// comparison this replaces.
		equal := true
		for _, key := range a.Schema.Keys {
			ka, kb := a.findLeaf(key), b.findLeaf(key)
			if ka == nil || kb == nil || ka.Value.Canonical != kb.Value.Canonical {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
		if !unique {
			return false
		}
		for _, group := range a.Schema.Unique {
			equal := len(group) > 0
			for _, leaf := range group {
				la, lb := a.findLeaf(leaf), b.findLeaf(leaf)
				if la == nil || lb == nil || la.Value.Canonical != lb.Value.Canonical {
					equal = false
					break
				}
			}
			if equal {
				return true
			}
		}
		return false

	default:
		return false
	}
}

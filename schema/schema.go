// Package schema holds the compiled schema-node model the validator checks
// data against. The model is produced by an external schema compiler and is
// read-only to the rest of this module.
package schema

// Kind is the statement kind of a schema node.
type Kind int

const (
	// Container is a container statement.
	Container Kind = iota
	// List is a keyed or keyless list statement.
	List
	// Leaf is a leaf statement.
	Leaf
	// LeafList is a leaf-list statement.
	LeafList
	// Anyxml is an anyxml statement.
	Anyxml
	// Choice is a choice statement; it has no data instance of its own.
	Choice
	// Case is a case statement inside a choice; no data instance either.
	Case
	// Input is the input block of an RPC.
	Input
	// Output is the output block of an RPC.
	Output
)

// String returns the statement keyword.
func (k Kind) String() string {
	switch k {
	case Container:
		return "container"
	case List:
		return "list"
	case Leaf:
		return "leaf"
	case LeafList:
		return "leaf-list"
	case Anyxml:
		return "anyxml"
	case Choice:
		return "choice"
	case Case:
		return "case"
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Status is the lifecycle status of a definition.
type Status int

const (
	// StatusCurrent is the default status.
	StatusCurrent Status = iota
	// StatusDeprecated marks a definition scheduled for removal.
	StatusDeprecated
	// StatusObsolete marks a definition that must not be instantiated when
	// obsolete checking is requested.
	StatusObsolete
)

// String returns the status keyword.
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return "unknown"
	}
}

// BaseType is the resolved base type of a leaf or leaf-list.
type BaseType int

const (
	// TypeString is a string type.
	TypeString BaseType = iota
	// TypeInt is a signed integer type.
	TypeInt
	// TypeUint is an unsigned integer type.
	TypeUint
	// TypeBoolean is a boolean type.
	TypeBoolean
	// TypeEnum is an enumeration type.
	TypeEnum
	// TypeLeafref is a reference to another leaf instance; the target is
	// resolved against the data tree.
	TypeLeafref
	// TypeInstanceID is an instance-identifier; the target is resolved
	// against the data tree.
	TypeInstanceID
	// TypeIdentityref is a reference to an identity.
	TypeIdentityref
)

// Typedef is one link of a derived type's ancestry. Each typedef carries
// its own lifecycle status.
type Typedef struct {
	Name   string
	Module string
	Status Status

	// Base is the typedef this one is derived from, nil for a type
	// derived directly from a built-in.
	Base *Typedef
}

// Type describes a leaf or leaf-list type.
type Type struct {
	// Base is the resolved built-in base type.
	Base BaseType

	// Der is the most-derived typedef of the restriction chain, nil when
	// the leaf uses a built-in type directly.
	Der *Typedef

	// Path is the leafref path expression, opaque to this module.
	Path string

	// RequireInstance reports whether an instance-identifier target must
	// exist in the data tree.
	RequireInstance bool
}

// Identity is a resolved identity definition.
type Identity struct {
	Name   string
	Module string
	Status Status
}

// Node is one compiled schema node.
type Node struct {
	// Name is the node identifier.
	Name string

	// Module is the name of the defining module.
	Module string

	// Kind is the statement kind.
	Kind Kind

	// Parent is the enclosing schema node, nil at module top level.
	Parent *Node

	// Children are the child definitions in declared order.
	Children []*Node

	// Keys are the key leaves of a list, in declared order.
	Keys []*Node

	// Unique are the unique-constraint leaf groups of a list.
	Unique [][]*Node

	// Config is true for configuration (read-write) nodes and false for
	// state (read-only) nodes.
	Config bool

	// Mandatory marks a leaf, choice or anyxml that must be instantiated.
	Mandatory bool

	// MinElements is the minimum instance count of a list or leaf-list.
	// Validation enforces it through the mandatory-content check.
	MinElements uint32

	// MaxElements is the maximum instance count, 0 for unbounded. The
	// upper bound is enforced by the tree editor when instances are
	// created, not by validation; it is carried here for editors and
	// other schema consumers.
	MaxElements uint32

	// Status is the lifecycle status.
	Status Status

	// Disabled is true when an if-feature dependency of this node is not
	// satisfied in the active feature set.
	Disabled bool

	// When is true when the node carries an applicable when condition.
	When bool

	// Must is true when the node carries at least one must constraint.
	Must bool

	// Type is the type descriptor of a leaf or leaf-list, nil otherwise.
	Type *Type
}

// IsLeafy reports whether the node is a leaf or leaf-list.
func (n *Node) IsLeafy() bool {
	return n.Kind == Leaf || n.Kind == LeafList
}

// HasInstance reports whether the node kind has its own data instance.
// Choice, case, input and output exist only in the schema tree.
func (n *Node) HasInstance() bool {
	switch n.Kind {
	case Container, List, Leaf, LeafList:
		return true
	default:
		return false
	}
}

// FeatureDisabled reports whether the node or any of its schema ancestors
// is disabled by an unmet if-feature dependency.
func (n *Node) FeatureDisabled() bool {
	for s := n; s != nil; s = s.Parent {
		if s.Disabled {
			return true
		}
	}
	return false
}

// InRPC reports whether the node sits inside an RPC input or output block.
func (n *Node) InRPC() bool {
	for s := n; s != nil; s = s.Parent {
		if s.Kind == Input || s.Kind == Output {
			return true
		}
	}
	return false
}

// IsKey reports whether the node is one of its parent list's keys. Key
// order validation works from the parent's Keys slice directly; this is
// the per-leaf view for editors, which must not delete or move a key.
func (n *Node) IsKey() bool {
	if n.Parent == nil || n.Parent.Kind != List {
		return false
	}
	for _, k := range n.Parent.Keys {
		if k == n {
			return true
		}
	}
	return false
}

// DataParent returns the closest ancestor that has its own data instance,
// skipping choice, case, input and output wrappers.
func (n *Node) DataParent() *Node {
	for s := n.Parent; s != nil; s = s.Parent {
		if s.Kind != Choice && s.Kind != Case {
			return s
		}
	}
	return nil
}

// DataDefinitions returns the node's child data definitions in declared
// order, descending through choice and case wrappers. This is the order
// RPC input and output children must appear in.
func (n *Node) DataDefinitions() []*Node {
	var defs []*Node
	n.appendDataDefinitions(&defs)
	return defs
}

func (n *Node) appendDataDefinitions(defs *[]*Node) {
	for _, c := range n.Children {
		if c.Kind == Choice || c.Kind == Case {
			c.appendDataDefinitions(defs)
			continue
		}
		*defs = append(*defs, c)
	}
}

// Add appends children, wiring their Parent links, and returns the node
// for chaining. It is a tree-building convenience for compilers and tests.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// DerivationChain returns the typedef ancestry of a leaf's type, most
// derived first, or nil for non-leafy nodes and built-in types.
func (n *Node) DerivationChain() []*Typedef {
	if !n.IsLeafy() || n.Type == nil {
		return nil
	}
	var chain []*Typedef
	for t := n.Type.Der; t != nil; t = t.Base {
		chain = append(chain, t)
	}
	return chain
}

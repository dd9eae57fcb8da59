package validate

import (
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
)

// MandatoryChecker evaluates the mandatory-content rules of a container or
// list schema against an instance. The schema compiler may supply its own
// implementation; the built-in one covers mandatory leaves, anyxml and
// choices plus min-elements of lists and leaf-lists, descending through
// choice and case wrappers.
type MandatoryChecker interface {
	// Missing returns the first mandatory child schema the node's children
	// do not satisfy, or nil when all mandatory content is present.
	Missing(node *data.Node) *schema.Node
}

// MandatoryCheckerFunc adapts a function to the MandatoryChecker interface.
type MandatoryCheckerFunc func(node *data.Node) *schema.Node

// Missing calls the wrapped function.
func (f MandatoryCheckerFunc) Missing(node *data.Node) *schema.Node {
	return f(node)
}

type builtinMandatory struct{}

func (builtinMandatory) Missing(node *data.Node) *schema.Node {
	counts := make(map[*schema.Node]int)
	for c := node.Child; c != nil; c = c.Next {
		counts[c.Schema]++
	}
	return missingIn(node.Schema, counts)
}

func missingIn(sch *schema.Node, counts map[*schema.Node]int) *schema.Node {
	for _, def := range sch.Children {
		switch def.Kind {
		case schema.Choice:
			active := activeCase(def, counts)
			if active == nil {
				if def.Mandatory {
					return def
				}
				continue
			}
			if active.Kind == schema.Case {
				if m := missingIn(active, counts); m != nil {
					return m
				}
			}

		case schema.Leaf, schema.Anyxml:
			if def.Mandatory && counts[def] == 0 {
				return def
			}

		case schema.List, schema.LeafList:
			if counts[def] < int(def.MinElements) {
				return def
			}
		}
	}
	return nil
}

// activeCase returns the child of a choice (a case, or a shorthand data
// definition acting as its own case) that has instantiated data, or nil
// when no case is selected.
func activeCase(choice *schema.Node, counts map[*schema.Node]int) *schema.Node {
	for _, c := range choice.Children {
		if c.Kind == schema.Case {
			for _, def := range c.DataDefinitions() {
				if counts[def] > 0 {
					return c
				}
			}
			continue
		}
		if counts[c] > 0 {
			return c
		}
	}
	return nil
}

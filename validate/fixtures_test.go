package validate

import (
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
)

// ifaceSchema builds the schema used across these tests:
//
//	list iface {
//	    key "name";
//	    leaf name { type string; }
//	    leaf mtu { type uint; }
//	    leaf-list dns { type string; }
//	    container ethernet { leaf duplex { type enum; } }
//	}
func ifaceSchema() *schema.Node {
	name := &schema.Node{Name: "name", Kind: schema.Leaf, Config: true,
		Type: &schema.Type{Base: schema.TypeString}}
	mtu := &schema.Node{Name: "mtu", Kind: schema.Leaf, Config: true,
		Type: &schema.Type{Base: schema.TypeUint}}
	dns := &schema.Node{Name: "dns", Kind: schema.LeafList, Config: true,
		Type: &schema.Type{Base: schema.TypeString}}
	duplex := &schema.Node{Name: "duplex", Kind: schema.Leaf, Config: true,
		Type: &schema.Type{Base: schema.TypeEnum}}
	ethernet := (&schema.Node{Name: "ethernet", Kind: schema.Container, Config: true}).Add(duplex)

	iface := (&schema.Node{Name: "iface", Kind: schema.List, Config: true}).
		Add(name, mtu, dns, ethernet)
	iface.Keys = []*schema.Node{name}
	return iface
}

func child(sch *schema.Node, name string) *schema.Node {
	for _, c := range sch.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ifaceInstance builds an iface list instance with a name key and an
// optional mtu.
func ifaceInstance(sch *schema.Node, name, mtu string) *data.Node {
	n := data.New(sch)
	n.AppendChild(data.NewLeaf(child(sch, "name"), name))
	if mtu != "" {
		n.AppendChild(data.NewLeaf(child(sch, "mtu"), mtu))
	}
	return n
}

// selection returns a valueless leaf instance, a filter selection node.
func selection(sch *schema.Node) *data.Node {
	return data.New(sch)
}

// childNames flattens a node's children to "name" or "name=value" strings
// for order-sensitive comparisons.
func childNames(n *data.Node) []string {
	var out []string
	for c := n.Child; c != nil; c = c.Next {
		s := c.Schema.Name
		if c.Value.IsSet() {
			s += "=" + c.Value.Canonical
		}
		out = append(out, s)
	}
	return out
}

package schema

import "testing"

func TestDataDefinitionsFlattening(t *testing.T) {
	// container sys { leaf a; choice proto { case tcp { leaf port; }
	// case udp { leaf dgram; } } leaf z; }
	port := &Node{Name: "port", Kind: Leaf}
	dgram := &Node{Name: "dgram", Kind: Leaf}
	tcp := (&Node{Name: "tcp", Kind: Case}).Add(port)
	udp := (&Node{Name: "udp", Kind: Case}).Add(dgram)
	proto := (&Node{Name: "proto", Kind: Choice}).Add(tcp, udp)
	a := &Node{Name: "a", Kind: Leaf}
	z := &Node{Name: "z", Kind: Leaf}
	sys := (&Node{Name: "sys", Kind: Container}).Add(a, proto, z)

	defs := sys.DataDefinitions()
	want := []string{"a", "port", "dgram", "z"}
	if len(defs) != len(want) {
		t.Fatalf("len(DataDefinitions()) = %d; want %d", len(defs), len(want))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("defs[%d] = %q; want %q", i, defs[i].Name, name)
		}
	}
}

func TestInRPC(t *testing.T) {
	leaf := &Node{Name: "arg", Kind: Leaf}
	input := (&Node{Name: "input", Kind: Input}).Add(leaf)
	_ = input

	if !leaf.InRPC() {
		t.Error("leaf under input should be in an RPC")
	}

	plain := &Node{Name: "x", Kind: Leaf}
	if plain.InRPC() {
		t.Error("top-level leaf should not be in an RPC")
	}
}

func TestFeatureDisabled(t *testing.T) {
	child := &Node{Name: "c", Kind: Leaf}
	parent := (&Node{Name: "p", Kind: Container, Disabled: true}).Add(child)
	_ = parent

	if !child.FeatureDisabled() {
		t.Error("child of a feature-disabled container should be disabled")
	}

	enabled := &Node{Name: "e", Kind: Leaf}
	if enabled.FeatureDisabled() {
		t.Error("enabled leaf reported as disabled")
	}
}

func TestIsKey(t *testing.T) {
	name := &Node{Name: "name", Kind: Leaf}
	mtu := &Node{Name: "mtu", Kind: Leaf}
	list := (&Node{Name: "iface", Kind: List}).Add(name, mtu)
	list.Keys = []*Node{name}

	if !name.IsKey() {
		t.Error("name should be a key")
	}
	if mtu.IsKey() {
		t.Error("mtu should not be a key")
	}
}

func TestDerivationChain(t *testing.T) {
	base := &Typedef{Name: "base-type", Status: StatusObsolete}
	derived := &Typedef{Name: "derived-type", Status: StatusCurrent, Base: base}
	leaf := &Node{
		Name: "speed",
		Kind: Leaf,
		Type: &Type{Base: TypeUint, Der: derived},
	}

	chain := leaf.DerivationChain()
	if len(chain) != 2 {
		t.Fatalf("len(chain) = %d; want 2", len(chain))
	}
	if chain[0].Name != "derived-type" || chain[1].Name != "base-type" {
		t.Errorf("chain = [%s %s]; want [derived-type base-type]", chain[0].Name, chain[1].Name)
	}

	plain := &Node{Name: "x", Kind: Leaf, Type: &Type{Base: TypeString}}
	if plain.DerivationChain() != nil {
		t.Error("built-in type should have no derivation chain")
	}
}

func TestDataParent(t *testing.T) {
	leaf := &Node{Name: "l", Kind: Leaf}
	cs := (&Node{Name: "cs", Kind: Case}).Add(leaf)
	ch := (&Node{Name: "ch", Kind: Choice}).Add(cs)
	top := (&Node{Name: "top", Kind: Container}).Add(ch)

	if got := leaf.DataParent(); got != top {
		t.Errorf("DataParent() = %v; want top container", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Container, "container"},
		{List, "list"},
		{Leaf, "leaf"},
		{LeafList, "leaf-list"},
		{Anyxml, "anyxml"},
		{Choice, "choice"},
		{Case, "case"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

package validate

import (
	"context"
	"errors"
	"testing"

	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
	"github.com/yangkit/validator/unres"
)

// mockResolver records resolution requests and optionally fails.
type mockResolver struct {
	calls []unres.Kind
	err   error
}

func (m *mockResolver) Resolve(ctx context.Context, node *data.Node, kind unres.Kind) error {
	m.calls = append(m.calls, kind)
	return m.err
}

func leafrefLeaf() *data.Node {
	sch := &schema.Node{Name: "peer", Kind: schema.Leaf, Config: true,
		Type: &schema.Type{Base: schema.TypeLeafref, Path: "../name"}}
	return data.NewLeaf(sch, "eth0")
}

func instidLeaf(require bool) *data.Node {
	sch := &schema.Node{Name: "target", Kind: schema.Leaf, Config: true,
		Type: &schema.Type{Base: schema.TypeInstanceID, RequireInstance: require}}
	return data.NewLeaf(sch, "/ifaces/iface[name='eth0']")
}

func TestValueResolvesLeafref(t *testing.T) {
	r := &mockResolver{}
	opts := yv.DefaultOptions()

	if err := Value(context.Background(), leafrefLeaf(), opts, r); err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0] != unres.Leafref {
		t.Errorf("resolver calls = %v; want [leafref]", r.calls)
	}
}

func TestValueSkipsResolvedLeafref(t *testing.T) {
	r := &mockResolver{}
	n := leafrefLeaf()
	n.Value.Kind = data.ValueLeafref
	n.Value.Target = leafrefLeaf() // already resolved

	if err := Value(context.Background(), n, yv.DefaultOptions(), r); err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("resolver called %d times for a resolved value; want 0", len(r.calls))
	}
}

func TestValueSkipsIncompleteTrees(t *testing.T) {
	for _, op := range []yv.Op{yv.OpFilter, yv.OpEdit, yv.OpGet, yv.OpGetConfig} {
		t.Run(op.String(), func(t *testing.T) {
			r := &mockResolver{}
			opts, err := yv.NewOptions(yv.WithOp(op))
			if err != nil {
				t.Fatal(err)
			}
			if err := Value(context.Background(), leafrefLeaf(), opts, r); err != nil {
				t.Fatalf("Value() error: %v", err)
			}
			if len(r.calls) != 0 {
				t.Errorf("resolver called in %s mode; references stay unresolved there", op)
			}
		})
	}
}

func TestValueInstanceIdentifier(t *testing.T) {
	r := &mockResolver{}
	if err := Value(context.Background(), instidLeaf(true), yv.DefaultOptions(), r); err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0] != unres.InstID {
		t.Errorf("resolver calls = %v; want [instance-identifier]", r.calls)
	}
}

func TestValueInstanceIdentifierNoRequire(t *testing.T) {
	r := &mockResolver{}
	if err := Value(context.Background(), instidLeaf(false), yv.DefaultOptions(), r); err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if len(r.calls) != 0 {
		t.Error("resolver called although the target is not required to exist")
	}
}

func TestValueResolverFailure(t *testing.T) {
	boom := errors.New("dangling reference")
	r := &mockResolver{err: boom}

	err := Value(context.Background(), leafrefLeaf(), yv.DefaultOptions(), r)
	if !errors.Is(err, boom) {
		t.Errorf("Value() error = %v; want wrapped resolver error", err)
	}
}

func TestValueNonLeafIsNoop(t *testing.T) {
	r := &mockResolver{}
	n := data.New(&schema.Node{Name: "c", Kind: schema.Container, Config: true})

	if err := Value(context.Background(), n, yv.DefaultOptions(), r); err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if len(r.calls) != 0 {
		t.Error("resolver called for a container")
	}
}

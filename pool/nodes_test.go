package pool

import (
	"testing"

	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/schema"
)

func TestAcquireNodesEmpty(t *testing.T) {
	s := AcquireNodes()
	defer ReleaseNodes(s)
	if len(*s) != 0 {
		t.Fatalf("len = %d; want 0", len(*s))
	}
}

func TestReleaseNodesClears(t *testing.T) {
	n := data.New(&schema.Node{Name: "x", Kind: schema.Leaf})

	s := AcquireNodes()
	*s = append(*s, n, n, n)
	view := (*s)[:3]
	ReleaseNodes(s)

	// stale node pointers must not survive the round trip
	for _, p := range view {
		if p != nil {
			t.Fatal("pooled slice retains node pointers")
		}
	}

	s2 := AcquireNodes()
	defer ReleaseNodes(s2)
	if len(*s2) != 0 {
		t.Fatalf("reused slice not reset, len = %d", len(*s2))
	}
}

func TestReleaseNodesNil(t *testing.T) {
	ReleaseNodes(nil) // must not panic
}

func TestReleaseNodesDropsOversized(t *testing.T) {
	s := AcquireNodes()
	*s = make([]*data.Node, 0, 1024)
	ReleaseNodes(s) // silently dropped, nothing to assert beyond no panic
}

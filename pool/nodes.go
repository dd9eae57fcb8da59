// Package pool provides pooled scratch slices to reduce allocations on the
// validation hot path.
package pool

import (
	"sync"

	"github.com/yangkit/validator/data"
)

// nodeSlicePool holds reusable []*data.Node scratch slices, used by the
// filter merge to partition selection and containment children.
var nodeSlicePool = sync.Pool{
	New: func() any {
		s := make([]*data.Node, 0, 16)
		return &s
	},
}

// AcquireNodes gets a node slice from the pool.
func AcquireNodes() *[]*data.Node {
	s := nodeSlicePool.Get().(*[]*data.Node)
	*s = (*s)[:0]
	return s
}

// ReleaseNodes returns a node slice to the pool.
func ReleaseNodes(s *[]*data.Node) {
	if s == nil {
		return
	}
	// Don't return oversized slices
	if cap(*s) <= 256 {
		clear(*s)
		nodeSlicePool.Put(s)
	}
}

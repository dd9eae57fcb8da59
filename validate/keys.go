package validate

import (
	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
)

// Keys verifies that a list instance's children begin with exactly the
// schema-declared key leaves, in declared order, each immediately after
// the previous one. Extra non-key children after the keys are not this
// check's concern.
//
// A nil return means the keys are in place. On the first misplaced or
// absent key it reports a missing element naming the expected key and, if
// that key exists later among the children, a secondary diagnostic for its
// invalid position.
func Keys(list *data.Node) []yv.Issue {
	sch := list.Schema

	child := list.Child
	for _, key := range sch.Keys {
		if child == nil || child.Schema != key {
			issues := []yv.Issue{
				yv.Error(yv.DiagMissingElement).
					At(list.Path()).
					Node(key.Name).
					Within(sch.Name).
					Build(),
			}
			for ; child != nil; child = child.Next {
				if child.Schema == key {
					issues = append(issues, yv.Error(yv.DiagInvalidKeyPosition).
						At(child.Path()).
						Node(key.Name).
						Within(sch.Name).
						Build())
					break
				}
			}
			return issues
		}
		child = child.Next
	}
	return nil
}

// Package yangvalidator validates YANG-modelled data trees.
//
// This is the semantic-analysis layer that runs after parsing: given a data
// tree already built by a parser or editor and paired with its compiled
// schema tree, it decides whether the instance is legal (key order,
// duplicates, cross-case conflicts, mandatory content, feature and status
// gating) and, in subtree-filter mode, canonicalizes overlapping filter
// subtrees into a minimal equivalent set.
//
// Checks whose outcome depends on the rest of the tree (leafref and
// instance-identifier targets, when/must conditions) are not evaluated
// inline. They are appended to a deferred-resolution queue and handed to an
// external resolver once the whole tree has been visited.
//
// # Quick Start
//
//	import (
//	    yv "github.com/yangkit/validator"
//	    "github.com/yangkit/validator/engine"
//	)
//
//	opts, err := yv.NewOptions(yv.WithOp(yv.OpNormal))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := engine.New(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := v.Validate(ctx, tree, resolver)
//	if result.HasErrors() {
//	    for _, issue := range result.Errors() {
//	        fmt.Println(issue)
//	    }
//	}
//	result.Release() // Return to pool for better performance
//
// # Validation Modes
//
// A single Options value selects the payload kind and is threaded through
// every check of one walk:
//
//   - OpNormal: complete data tree, all checks apply
//   - OpEdit: partial edit payload, mandatory content may be absent
//   - OpGet / OpGetConfig: retrieval replies, uniqueness is trusted
//   - OpFilter: subtree-filter query, overlapping subtrees are merged
//
// plus the orthogonal ConfigOnly and CheckObsolete flags.
//
// # Architecture
//
//   - schema: compiled schema-node model (read-only to this library)
//   - data: data-node model with sibling ordering and tagged values
//   - unres: deferred-resolution queue and the Resolver seam
//   - validate: the per-node checks (keys, filter, value, context, content)
//   - engine: the tree-walking driver
//   - worker: batch validation of independent trees
//   - prom: Prometheus collector over the engine metrics
//
// Parsing, schema compilation, when/must evaluation and reference
// resolution are external collaborators reached through small interfaces;
// this library decides when and with which node to invoke them.
package yangvalidator

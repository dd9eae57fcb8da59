// Package validate implements the per-node checks of the validation walk:
// list key order, subtree-filter equivalence and merging, immediate value
// resolution, context gating and content rules. The engine package drives
// these over a whole tree; each check is also usable on its own.
package validate

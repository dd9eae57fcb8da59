package yangvalidator

import "fmt"

// Op selects the kind of payload being validated. It determines which
// structural rules apply to the tree: a full datastore is checked
// completely, while partial payloads (edits, retrieval replies, subtree
// filters) legitimately omit content a full tree must carry.
type Op int

const (
	// OpNormal validates a complete data tree at create time.
	OpNormal Op = iota
	// OpEdit validates a partial edit payload; mandatory content and
	// reference targets may legitimately be absent.
	OpEdit
	// OpGet validates a retrieval reply covering both configuration and
	// state data.
	OpGet
	// OpGetConfig validates a retrieval reply covering configuration only.
	OpGetConfig
	// OpFilter validates a subtree-filter query; overlapping filter
	// subtrees are canonicalized into a minimal equivalent set as a side
	// effect of validation.
	OpFilter
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpNormal:
		return "normal"
	case OpEdit:
		return "edit"
	case OpGet:
		return "get"
	case OpGetConfig:
		return "get-config"
	case OpFilter:
		return "filter"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Option configures validation Options.
type Option func(*Options)

// Options holds the validation mode for one tree walk. The same value must
// be threaded unchanged through every check of the walk.
type Options struct {
	// Op is the kind of payload being validated.
	Op Op

	// ConfigOnly restricts the tree to configuration data; state data
	// becomes an inappropriate element.
	ConfigOnly bool

	// CheckObsolete enables rejection of obsolete schema nodes, typedefs
	// and identities.
	CheckObsolete bool
}

// DefaultOptions returns the default configuration: a full create-time
// validation with no extra restrictions.
func DefaultOptions() *Options {
	return &Options{Op: OpNormal}
}

// NewOptions builds and validates an Options value.
func NewOptions(opts ...Option) (*Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// WithOp sets the operation kind.
func WithOp(op Op) Option {
	return func(o *Options) { o.Op = op }
}

// WithConfigOnly restricts validation to configuration data.
func WithConfigOnly() Option {
	return func(o *Options) { o.ConfigOnly = true }
}

// WithCheckObsolete enables obsolete-status checking.
func WithCheckObsolete() Option {
	return func(o *Options) { o.CheckObsolete = true }
}

// Validate checks the options once at entry so the individual checks never
// have to re-validate mode combinations.
func (o *Options) Validate() error {
	switch o.Op {
	case OpNormal, OpEdit, OpGet, OpGetConfig, OpFilter:
		return nil
	default:
		return fmt.Errorf("unknown operation %d", int(o.Op))
	}
}

// Filter reports whether the subtree-filter mode is active.
func (o *Options) Filter() bool {
	return o.Op == OpFilter
}

// Retrieval reports whether the tree is a get or get-config reply. Those
// replies come from the server itself, so instance uniqueness and key order
// are trusted rather than re-checked.
func (o *Options) Retrieval() bool {
	return o.Op == OpGet || o.Op == OpGetConfig
}

// IncompleteTree reports whether the payload may legitimately omit content
// a full tree must carry: subtree filters, edits and retrieval replies may
// all reference targets that do not (yet) exist, so reference resolution
// and mandatory-content checks do not apply.
func (o *Options) IncompleteTree() bool {
	switch o.Op {
	case OpFilter, OpEdit, OpGet, OpGetConfig:
		return true
	default:
		return false
	}
}

// ConfigShaped reports whether the payload must contain configuration data
// only, making state data an inappropriate element.
func (o *Options) ConfigShaped() bool {
	return o.Op == OpEdit || o.Op == OpGetConfig || o.ConfigOnly
}

// EvalWhen reports whether applicable when-conditions must be scheduled
// for evaluation: only for full trees and explicitly config-only walks.
func (o *Options) EvalWhen() bool {
	return o.Op == OpNormal || o.ConfigOnly
}

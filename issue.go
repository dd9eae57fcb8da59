package yangvalidator

// IssueSeverity represents the severity of a validation issue.
type IssueSeverity string

const (
	// SeverityError indicates a validation error; the data tree is invalid
	// and the current validation run must abort.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a potential problem that should be reviewed.
	SeverityWarning IssueSeverity = "warning"
	// SeverityInformation indicates informational feedback.
	SeverityInformation IssueSeverity = "information"
)

// DiagKind identifies the class of a validation diagnostic. The kinds are
// opaque codes: rendering them into user-facing text is the job of an
// external formatter, this package only selects the kind and its arguments.
type DiagKind string

const (
	// DiagMissingElement indicates a required element is absent (a list key
	// not at its declared position, or a mandatory child not instantiated).
	DiagMissingElement DiagKind = "missing-element"
	// DiagInvalidKeyPosition indicates a list key exists but appears after
	// non-key siblings instead of at its declared position.
	DiagInvalidKeyPosition DiagKind = "invalid-key-position"
	// DiagTooManyInstances indicates a second instance of a single-instance
	// node (container, leaf, anyxml) among its siblings.
	DiagTooManyInstances DiagKind = "too-many-instances"
	// DiagTooFewInstances indicates a list or leaf-list with fewer
	// instances than its schema requires.
	DiagTooFewInstances DiagKind = "too-few-instances"
	// DiagDuplicateListInstance indicates two list or leaf-list instances
	// with equal keys or an equal unique-constraint combination.
	DiagDuplicateListInstance DiagKind = "duplicate-list-instance"
	// DiagConflictingCaseData indicates sibling data instantiating two
	// different cases of the same choice.
	DiagConflictingCaseData DiagKind = "conflicting-case-data"
	// DiagWrongSiblingOrder indicates RPC input/output children out of
	// their schema-declared order.
	DiagWrongSiblingOrder DiagKind = "wrong-sibling-order"
	// DiagInappropriateElement indicates a node that cannot appear in this
	// payload: its schema is disabled by an if-feature, or it is state data
	// inside a configuration-shaped request.
	DiagInappropriateElement DiagKind = "inappropriate-element"
	// DiagObsoleteData indicates an instantiated node whose schema (or a
	// non-instantiable ancestor of it) is marked obsolete.
	DiagObsoleteData DiagKind = "obsolete-data-instantiated"
	// DiagObsoleteType indicates a leaf whose type derives from an obsolete
	// typedef, or a value referencing an identity more obsolete than the
	// referencing node.
	DiagObsoleteType DiagKind = "obsolete-type-instantiated"
)

// Issue represents a single validation diagnostic.
type Issue struct {
	// Severity of the issue.
	Severity IssueSeverity `json:"severity"`

	// Kind identifying the class of the diagnostic.
	Kind DiagKind `json:"kind"`

	// Path is the data path of the anchor node.
	Path string `json:"path,omitempty"`

	// Node is the name of the schema node in error.
	Node string `json:"node,omitempty"`

	// Within is the name of the enclosing node, or "data tree" at the
	// top level.
	Within string `json:"within,omitempty"`

	// Detail carries a secondary contextual name: the expected key, the
	// conflicting choice, the predecessor declared later, the obsolete
	// typedef or identity.
	Detail string `json:"detail,omitempty"`
}

// IsError returns true if this is an error issue.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

// String returns a developer-readable representation of the issue.
func (i Issue) String() string {
	s := string(i.Severity) + ": " + string(i.Kind)
	if i.Node != "" {
		s += " " + i.Node
	}
	if i.Detail != "" {
		s += " (" + i.Detail + ")"
	}
	if i.Path != "" {
		s += " at " + i.Path
	}
	return s
}

// IssueBuilder provides a fluent API for building issues.
type IssueBuilder struct {
	issue Issue
}

// NewIssue creates a new IssueBuilder.
func NewIssue(severity IssueSeverity, kind DiagKind) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			Severity: severity,
			Kind:     kind,
		},
	}
}

// Error creates an error issue builder.
func Error(kind DiagKind) *IssueBuilder {
	return NewIssue(SeverityError, kind)
}

// Warning creates a warning issue builder.
func Warning(kind DiagKind) *IssueBuilder {
	return NewIssue(SeverityWarning, kind)
}

// At sets the anchor node path.
func (b *IssueBuilder) At(path string) *IssueBuilder {
	b.issue.Path = path
	return b
}

// Node sets the name of the schema node in error.
func (b *IssueBuilder) Node(name string) *IssueBuilder {
	b.issue.Node = name
	return b
}

// Within sets the name of the enclosing node.
func (b *IssueBuilder) Within(name string) *IssueBuilder {
	b.issue.Within = name
	return b
}

// Detail sets the secondary contextual name.
func (b *IssueBuilder) Detail(name string) *IssueBuilder {
	b.issue.Detail = name
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}

// Package engine provides the tree-walking validation driver.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/unres"
	"github.com/yangkit/validator/validate"
	"github.com/yangkit/validator/walker"
)

// errStop aborts the walk after a hard validation failure.
var errStop = errors.New("engine: validation failed")

// Validator drives one configured kind of validation over data trees. It
// visits every node in document order, runs the context and content checks,
// removes redundant filter nodes, and hands the deferred-resolution queue
// to the resolver once the walk is complete.
//
// A Validator is safe for concurrent use over independent trees; two
// concurrent runs must not share a tree.
type Validator struct {
	opts    *yv.Options
	context *validate.ContextValidator
	content *validate.ContentValidator
	metrics *yv.Metrics
	log     logrus.FieldLogger
}

// Option configures the Validator.
type Option func(*Validator)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(v *Validator) { v.log = log }
}

// WithMetrics sets a shared metrics instance.
func WithMetrics(m *yv.Metrics) Option {
	return func(v *Validator) { v.metrics = m }
}

// WithMandatoryChecker overrides the built-in mandatory-content check,
// letting the schema compiler supply its own evaluation.
func WithMandatoryChecker(c validate.MandatoryChecker) Option {
	return func(v *Validator) { v.content.Mandatory = c }
}

// New creates a Validator for the given validation mode.
func New(opts *yv.Options, options ...Option) (*Validator, error) {
	if opts == nil {
		opts = yv.DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	v := &Validator{
		opts:    opts,
		context: validate.NewContextValidator(),
		content: validate.NewContentValidator(),
		metrics: yv.NewMetrics(),
		log:     discardLogger(),
	}
	for _, opt := range options {
		opt(v)
	}
	v.content.Metrics = v.metrics
	return v, nil
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Options returns the validation mode of this Validator.
func (v *Validator) Options() *yv.Options {
	return v.opts
}

// Metrics returns the metrics instance.
func (v *Validator) Metrics() *yv.Metrics {
	return v.metrics
}

// Validate walks the tree starting at the first sibling of root, validates
// every node, and drains the deferred checks through the resolver. The
// returned Result carries the diagnostics of a hard failure; the error
// return is reserved for infrastructure failures (cancellation, merge
// errors, resolver failures).
//
// In filter mode the tree is canonicalized in place: redundant filter
// nodes are unlinked and freed. Callers holding references into the tree
// must drop them after a filter-mode run.
func (v *Validator) Validate(ctx context.Context, root *data.Node, resolver unres.Resolver) (*yv.Result, error) {
	queue := unres.NewQueue()
	result, err := v.run(ctx, root, queue)
	if err != nil || !result.Valid {
		return result, err
	}

	if queue.Len() > 0 {
		if resolver == nil {
			result.Valid = false
			return result, fmt.Errorf("%d deferred checks but no resolver", queue.Len())
		}
		pending := queue.Len()
		if err := queue.Drain(ctx, resolver); err != nil {
			v.metrics.RecordResolved(pending - queue.Len())
			result.Valid = false
			return result, err
		}
		v.metrics.RecordResolved(pending)
	}
	return result, nil
}

// ValidateWithQueue is Validate with a caller-owned deferred queue: items
// are appended to q and not drained, the caller resolves them once every
// tree feeding the queue has been walked.
func (v *Validator) ValidateWithQueue(ctx context.Context, root *data.Node, q *unres.Queue) (*yv.Result, error) {
	return v.run(ctx, root, q)
}

func (v *Validator) run(ctx context.Context, root *data.Node, queue *unres.Queue) (*yv.Result, error) {
	start := time.Now()
	result := yv.AcquireResult()
	result.Op = v.opts.Op

	before := queue.Len()
	err := walker.Walk(root.FirstSibling(), func(n *data.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return v.visit(n, queue, result)
	})

	result.Deferred = queue.Len() - before
	v.metrics.RecordDeferred(result.Deferred)

	switch {
	case err == nil || errors.Is(err, errStop):
		err = nil
	default:
		result.Valid = false
	}

	v.metrics.RecordValidation(time.Since(start), result.Valid)
	v.log.WithFields(logrus.Fields{
		"op":       v.opts.Op.String(),
		"valid":    result.Valid,
		"nodes":    result.Nodes,
		"dropped":  result.Dropped,
		"deferred": result.Deferred,
	}).Debug("tree validated")

	return result, err
}

// visit validates a single node. In filter mode the content checks run
// first so redundant nodes are merged away before anything else sees
// them; in the other modes the context gating runs first.
func (v *Validator) visit(n *data.Node, queue *unres.Queue, result *yv.Result) error {
	v.metrics.RecordNode()
	result.Nodes++

	if v.opts.Filter() {
		if err := v.visitContent(n, queue, result); err != nil {
			return err
		}
		if issues := v.context.Validate(n, v.opts, queue); issues != nil {
			v.fail(result, issues)
			return errStop
		}
	} else {
		if issues := v.context.Validate(n, v.opts, queue); issues != nil {
			v.fail(result, issues)
			return errStop
		}
		if err := v.visitContent(n, queue, result); err != nil {
			return err
		}
	}

	n.Unvalidated = false
	return nil
}

func (v *Validator) visitContent(n *data.Node, queue *unres.Queue, result *yv.Result) error {
	issues, err := v.content.Validate(n, v.opts, queue)
	switch {
	case errors.Is(err, validate.ErrDiscard):
		// expected filter-mode outcome, not a fault: the node is
		// redundant after canonicalization
		v.log.WithField("path", n.Path()).Debug("dropping redundant filter node")
		n.Free()
		result.Dropped++
		v.metrics.RecordFilterDrop()

		// a merge into an already visited sibling can relocate children
		// of the dropped node that still need their own pass
		var merged *validate.MergedInto
		if errors.As(err, &merged) && !merged.Survivor.Unvalidated {
			if err := v.visitRelocated(merged.Survivor, queue, result); err != nil {
				return err
			}
		}
		return walker.Skip
	case err != nil:
		return err
	case issues != nil:
		v.fail(result, issues)
		return errStop
	}
	return nil
}

// visitRelocated validates the subtree a filter merge relocated into a
// survivor that already had its turn. Recursive merges can leave relocated
// nodes at any depth, so validated nodes are descended through without
// being re-run.
func (v *Validator) visitRelocated(survivor *data.Node, queue *unres.Queue, result *yv.Result) error {
	return walker.Walk(survivor.Child, func(n *data.Node) error {
		if !n.Unvalidated {
			return nil
		}
		return v.visit(n, queue, result)
	})
}

func (v *Validator) fail(result *yv.Result, issues []yv.Issue) {
	result.AddIssues(issues)
	for _, issue := range issues {
		v.metrics.RecordIssue(issue.Severity)
	}
}

// RevalidateValue immediately re-resolves the reference value of a single
// leaf, for values replaced after the main pass when the rest of the tree
// already exists.
func (v *Validator) RevalidateValue(ctx context.Context, node *data.Node, resolver unres.Resolver) error {
	return validate.Value(ctx, node, v.opts, resolver)
}

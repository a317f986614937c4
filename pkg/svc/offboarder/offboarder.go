package offboarder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	"github.com/devantler-tech/offboard/pkg/client/argocd"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/devantler-tech/offboard/pkg/utils/log"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"github.com/sirupsen/logrus"
)

// ErrNilConfig is returned when an Offboarder is built without a config.
var ErrNilConfig = errors.New("offboarding config is nil")

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures a run.
type Options struct {
	// DryRun reports every operation as skipped without touching the cluster.
	DryRun bool
	// BestEffort keeps going after unexpected errors and returns them joined.
	BestEffort bool
	// Sleep replaces the settle delay pause. Defaults to a context-aware sleep.
	Sleep SleepFunc
	// Writer receives progress messages. Defaults to io.Discard.
	Writer io.Writer
	// Logger receives debug tracing.
	Logger logrus.FieldLogger
	// Timer, when set, adds timing to the final message.
	Timer timer.Timer
}

// Offboarder runs the offboarding procedure for one deployment.
type Offboarder struct {
	manager argocd.Manager
	config  *v1alpha1.Offboarding
	opts    Options
}

// New creates an Offboarder. cfg must be defaulted and valid.
func New(manager argocd.Manager, cfg *v1alpha1.Offboarding, opts Options) (*Offboarder, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if opts.Sleep == nil {
		opts.Sleep = sleep
	}

	if opts.Writer == nil {
		opts.Writer = io.Discard
	}

	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}

	return &Offboarder{manager: manager, config: cfg, opts: opts}, nil
}

// operation is one planned call.
type operation struct {
	phase       int
	step        Step
	target      string
	description string
	run         func(ctx context.Context) (argocd.Outcome, string, error)
}

// Plan returns the operations a run would perform, each marked skipped.
func (o *Offboarder) Plan() *Report {
	report := o.newReport()
	report.DryRun = true

	for _, op := range o.operations() {
		report.add(StepResult{
			Phase:   op.phase,
			Step:    op.step,
			Target:  op.target,
			Outcome: argocd.OutcomeSkipped,
			Detail:  op.description,
		})
	}

	return report
}

// Run performs every operation in order and returns the report.
//
// The returned report is never nil. The error joins every unexpected failure; without
// BestEffort it holds only the first, and the operations after it are not run.
func (o *Offboarder) Run(ctx context.Context) (*Report, error) {
	if o.opts.DryRun {
		report := o.Plan()
		notify.Infof(o.opts.Writer, "dry run: %d operations planned, nothing changed",
			report.Count(argocd.OutcomeSkipped))

		return report, nil
	}

	notify.Titlef(o.opts.Writer, "🧹", "Offboard %s...", o.config.Spec.Application)

	report := o.newReport()

	var errs []error

	for _, op := range o.operations() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("offboarding interrupted: %w", err))

			break
		}

		o.opts.Logger.WithFields(logrus.Fields{
			"step":   op.step,
			"target": op.target,
		}).Debug("running offboarding step")

		outcome, detail, err := op.run(ctx)
		if err != nil {
			outcome = argocd.OutcomeFailed
			detail = err.Error()
		}

		result := StepResult{Phase: op.phase, Step: op.step, Target: op.target, Outcome: outcome, Detail: detail}
		report.add(result)
		o.notifyResult(result)

		if err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", op.step, op.target, err))

			if !o.opts.BestEffort {
				break
			}
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		if failed := report.Failed(); len(failed) > 0 {
			notify.Warningf(o.opts.Writer, "%d of %d operations failed", len(failed), len(report.Steps))
		}

		return report, err
	}

	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "offboarded %s",
		Args:    []any{o.config.Spec.Application},
		Timer:   o.opts.Timer,
		Writer:  o.opts.Writer,
	})

	return report, nil
}

func (o *Offboarder) newReport() *Report {
	return &Report{
		Application: o.config.Spec.Application,
		Namespace:   o.config.Spec.ArgoCD.Namespace,
	}
}

func (o *Offboarder) notifyResult(result StepResult) {
	message := fmt.Sprintf("%s %s: %s", result.Step, result.Target, result.Outcome)
	if result.Detail != "" {
		message += " (" + result.Detail + ")"
	}

	switch result.Outcome {
	case argocd.OutcomeFailed:
		notify.Errorf(o.opts.Writer, "%s", message)
	case argocd.OutcomeTimedOut:
		notify.Warningf(o.opts.Writer, "%s", message)
	case argocd.OutcomeNotFound, argocd.OutcomeAlreadyRemoved, argocd.OutcomeSkipped:
		notify.Infof(o.opts.Writer, "%s", message)
	default:
		notify.Successf(o.opts.Writer, "%s", message)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("settle delay: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

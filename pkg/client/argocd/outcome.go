package argocd

// Outcome is the result of one offboarding operation.
type Outcome string

const (
	// OutcomeDeleted means the object existed and was deleted.
	OutcomeDeleted Outcome = "deleted"
	// OutcomeNotFound means the object did not exist.
	OutcomeNotFound Outcome = "not-found"
	// OutcomePatched means the object was patched.
	OutcomePatched Outcome = "patched"
	// OutcomeAlreadyRemoved means the object exists but holds nothing to remove.
	OutcomeAlreadyRemoved Outcome = "already-removed"
	// OutcomeRestarted means a rolling restart was triggered.
	OutcomeRestarted Outcome = "restarted"
	// OutcomeTimedOut means a wait ran out of time. Runs continue after it.
	OutcomeTimedOut Outcome = "timed-out"
	// OutcomeWaited means a fixed pause elapsed.
	OutcomeWaited Outcome = "waited"
	// OutcomeSkipped means the operation was not attempted.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the operation returned an unexpected error.
	OutcomeFailed Outcome = "failed"
)

// Succeeded reports whether the outcome leaves the cluster in the desired state.
func (o Outcome) Succeeded() bool {
	return o != OutcomeFailed
}

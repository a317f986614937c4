package offboarder

import (
	"github.com/devantler-tech/offboard/pkg/client/argocd"
)

// Step names one operation of a run.
type Step string

const (
	StepDeleteParent               Step = "delete-parent-application"
	StepWaitParent                 Step = "wait-parent-deletion"
	StepSettle                     Step = "settle"
	StepDeleteChild                Step = "delete-child-application"
	StepDeleteSecret               Step = "delete-secret"
	StepPruneConfigMap             Step = "prune-notifications-configmap"
	StepPruneSecret                Step = "prune-notifications-secret"
	StepRestartController          Step = "restart-notifications-controller"
	StepDeleteSelectedApplications Step = "delete-selected-applications"
	StepDeleteSelectedSecrets      Step = "delete-selected-secrets"
)

// StepResult records what one operation did.
type StepResult struct {
	// Phase is the 1-based position of the operation's phase in a run.
	Phase   int            `json:"phase"`
	Step    Step           `json:"step"`
	Target  string         `json:"target"`
	Outcome argocd.Outcome `json:"outcome"`
	Detail  string         `json:"detail,omitempty"`
}

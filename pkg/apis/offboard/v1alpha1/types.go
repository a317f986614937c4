package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	// Group is the API group for offboarding configs.
	Group = "offboard.devantler.tech"
	// Version is the API version for offboarding configs.
	Version = "v1alpha1"
	// Kind is the kind for offboarding configs.
	Kind = "Offboarding"
	// APIVersion is the full API version for offboarding configs.
	APIVersion = Group + "/" + Version
)

// --- Core Types ---

// Offboarding describes which GitOps objects belong to one deployment and how to remove them.
type Offboarding struct {
	metav1.TypeMeta `json:",inline" mapstructure:",squash"`

	Spec Spec `json:"spec,omitzero" mapstructure:"spec,omitempty"`
}

// Spec identifies the deployment and the cluster objects that carry its footprint.
type Spec struct {
	Application   string        `json:"application,omitzero"   jsonschema:"required,description=Deployment identifier substituted at onboarding"` //nolint:lll
	Environment   string        `json:"environment,omitzero"   jsonschema:"description=Environment the deployment runs in"`
	Repository    string        `json:"repository,omitzero"    jsonschema:"description=Source repository identifier"`
	ArgoCD        ArgoCD        `json:"argocd,omitzero"`
	Secrets       []string      `json:"secrets,omitempty"      jsonschema:"description=Secrets in the Argo CD namespace to delete"`
	Notifications Notifications `json:"notifications,omitzero"`
	LabelSelector string        `json:"labelSelector,omitzero" jsonschema:"description=Selector for leftover Applications and Secrets"` //nolint:lll
	Timing        Timing        `json:"timing,omitzero"`
}

// ArgoCD locates the Application objects of the deployment.
type ArgoCD struct {
	Namespace         string  `json:"namespace,omitzero"`
	ParentApplication string  `json:"parentApplication,omitzero" jsonschema:"description=App-of-Apps parent deleted first"`
	ChildApplication  string  `json:"childApplication,omitzero"  jsonschema:"description=Application deleted when it survives the parent"` //nolint:lll
	Cascade           Cascade `json:"cascade,omitzero"           jsonschema:"enum=Foreground,enum=Background,enum=Orphan"`
}

// Notifications locates the Argo CD notifications configuration shared by all deployments.
type Notifications struct {
	ConfigMap          string   `json:"configMap,omitzero"`
	Secret             string   `json:"secret,omitzero"`
	Controller         string   `json:"controller,omitzero"         jsonschema:"description=Deployment restarted after the config changes"` //nolint:lll
	ServiceKeys        []string `json:"serviceKeys,omitempty"       jsonschema:"description=ConfigMap data keys owned by the deployment"`
	SubscriptionsKey   string   `json:"subscriptionsKey,omitzero"`
	SubscriptionMarker string   `json:"subscriptionMarker,omitzero" jsonschema:"description=Line prefix opening a subscription entry"`
	SubscriptionTarget string   `json:"subscriptionTarget,omitzero" jsonschema:"description=Substring identifying the deployment's subscription entries"` //nolint:lll
	SecretKeys         []string `json:"secretKeys,omitempty"        jsonschema:"description=Secret data keys owned by the deployment"`
	SharedSecretKey    string   `json:"sharedSecretKey,omitzero"    jsonschema:"description=Secret data key shared by all deployments; never removed"` //nolint:lll
}

// Timing bounds the waits of an offboarding run.
type Timing struct {
	DeletionTimeout metav1.Duration `json:"deletionTimeout,omitzero"`
	PollInterval    metav1.Duration `json:"pollInterval,omitzero"`
	// SettleDelay of zero skips the pause.
	SettleDelay     metav1.Duration `json:"settleDelay"`
}

// Package offboarder removes one deployment's GitOps footprint from a cluster.
//
// A run executes these steps in order, each through the Argo CD manager:
//
//  1. delete the parent (App-of-Apps) Application and wait for it to disappear
//  2. pause for the settle delay
//  3. delete the child Application if it survived
//  4. delete the deployment's secrets
//  5. prune the notifications ConfigMap
//  6. prune the notifications Secret
//  7. restart the notifications controller
//  8. delete leftover Applications and Secrets selected by label
//
// Missing objects and expired waits are recorded and the run continues. Any other
// error stops the run unless Options.BestEffort is set.
package offboarder

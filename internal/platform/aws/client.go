// Package aws provides a wrapper around the AWS SDK clients used for
// stack deployment: CloudFormation for the stack lifecycle and EC2 for
// key pair management.
package aws

import (
	"context"
	"strings"
	"time"
)

// StackStatus is a CloudFormation stack status value.
type StackStatus string

// Stack status values observed during a create workflow.
const (
	StatusCreateInProgress   StackStatus = "CREATE_IN_PROGRESS"
	StatusCreateComplete     StackStatus = "CREATE_COMPLETE"
	StatusCreateFailed       StackStatus = "CREATE_FAILED"
	StatusRollbackInProgress StackStatus = "ROLLBACK_IN_PROGRESS"
	StatusRollbackComplete   StackStatus = "ROLLBACK_COMPLETE"
	StatusRollbackFailed     StackStatus = "ROLLBACK_FAILED"
)

// IsTerminal reports whether no further automatic transition occurs
// without new user action.
func (s StackStatus) IsTerminal() bool {
	if s == StatusCreateComplete || s == StatusRollbackComplete {
		return true
	}
	return strings.Contains(string(s), "FAILED")
}

// IsFailure reports whether the status is terminal and not a success.
func (s StackStatus) IsFailure() bool {
	return s.IsTerminal() && s != StatusCreateComplete
}

// StackDescription holds the observable state of a CloudFormation stack.
type StackDescription struct {
	Name         string
	ID           string
	Status       StackStatus
	StatusReason string
	Outputs      map[string]string
	CreatedTime  time.Time
}

// KeyPairManager defines the interface for managing EC2 key pairs.
type KeyPairManager interface {
	// CreateKeyPair creates a new key pair and returns the private key
	// material in PEM format. The public half stays with EC2.
	CreateKeyPair(ctx context.Context, name string) (string, error)
	// ImportKeyPair registers a locally generated public key under the
	// given name and returns the key pair ID.
	ImportKeyPair(ctx context.Context, name string, publicKey []byte) (string, error)
}

// StackManager defines the interface for managing CloudFormation stacks.
type StackManager interface {
	// CreateStack submits the template with the given parameters and
	// returns the stack ID. Submitting an existing stack name fails;
	// there is no update path.
	CreateStack(ctx context.Context, name, templateBody string, parameters map[string]string) (string, error)
	// DescribeStack returns the current status and outputs of a stack.
	DescribeStack(ctx context.Context, name string) (*StackDescription, error)
}

// CloudProvider combines every AWS capability the deployment workflow needs.
type CloudProvider interface {
	KeyPairManager
	StackManager
}

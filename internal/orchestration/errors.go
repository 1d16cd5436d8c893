package orchestration

import (
	"fmt"
	"time"

	"github.com/ollamastack/ollamastack/internal/platform/aws"
)

// FailureError reports that the stack reached a failure or rollback
// terminal status. The last observed status and reason are carried to
// aid diagnosis; the deployment is not retried.
type FailureError struct {
	StackName string
	Status    aws.StackStatus
	Reason    string
}

func (e *FailureError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("stack %s failed with status %s: %s", e.StackName, e.Status, e.Reason)
	}
	return fmt.Sprintf("stack %s failed with status %s", e.StackName, e.Status)
}

// TimeoutError reports that the polling loop exceeded its bounded wait
// without observing a terminal status. The remote creation keeps running
// to its own conclusion.
type TimeoutError struct {
	StackName  string
	LastStatus aws.StackStatus
	Waited     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for stack %s (last status %s)", e.Waited, e.StackName, e.LastStatus)
}

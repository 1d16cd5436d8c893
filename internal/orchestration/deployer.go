// Package orchestration coordinates the deployment workflow: key pair
// provisioning, template submission, the poll-until-terminal loop, and
// output extraction.
//
// The workflow is strictly sequential on the client side. The only
// concurrency is the implicit asynchrony between this polling loop and
// the instance's own provisioning script; the two are synchronized
// solely through the stack status reported by CloudFormation.
package orchestration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ollamastack/ollamastack/internal/config"
	"github.com/ollamastack/ollamastack/internal/keypair"
	"github.com/ollamastack/ollamastack/internal/platform/aws"
	"github.com/ollamastack/ollamastack/internal/template"
	"github.com/ollamastack/ollamastack/internal/util/retry"
)

// Workflow phases reported through progress events.
const (
	PhaseKeyPair  = "keypair"
	PhaseTemplate = "template"
	PhaseSubmit   = "submit"
	PhaseStack    = "stack"
)

// Event is a progress notification emitted while the workflow runs.
// Stack polling events carry the last observed status.
type Event struct {
	Phase   string
	Status  aws.StackStatus
	Message string
}

// Result holds the facts extracted from a completed stack.
type Result struct {
	StackID     string
	Outputs     map[string]string
	KeyPairName string
	KeyPath     string
}

// Deployer runs the deployment workflow against a cloud provider.
type Deployer struct {
	cloud    aws.CloudProvider
	cfg      *config.Config
	timeouts *config.Timeouts
	keys     *keypair.Provisioner

	sleep    func(ctx context.Context, d time.Duration) error
	progress func(Event)
	body     string
	lint     func() error
}

// Option configures a Deployer.
type Option func(*Deployer)

// WithSleeper replaces the inter-poll sleep (for deterministic tests).
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(d *Deployer) { d.sleep = sleep }
}

// WithProgress replaces the progress sink. The default logs each event.
func WithProgress(progress func(Event)) Option {
	return func(d *Deployer) { d.progress = progress }
}

// WithKeyPairProvisioner replaces the key pair provisioner.
func WithKeyPairProvisioner(keys *keypair.Provisioner) Option {
	return func(d *Deployer) { d.keys = keys }
}

// WithTemplate replaces the embedded template body and its lint.
func WithTemplate(body string, lint func() error) Option {
	return func(d *Deployer) {
		d.body = body
		d.lint = lint
	}
}

// NewDeployer creates a Deployer for the given request.
func NewDeployer(cloud aws.CloudProvider, cfg *config.Config, timeouts *config.Timeouts, opts ...Option) *Deployer {
	d := &Deployer{
		cloud:    cloud,
		cfg:      cfg,
		timeouts: timeouts,
		keys:     keypair.NewProvisioner(cloud),
		sleep:    sleepWithContext,
		progress: logEvent,
		body:     template.Body(),
		lint:     template.Lint,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deploy runs the workflow to completion. Every error is fatal to the
// whole deployment; no compensation or rollback is attempted here — a
// half-created stack is left to CloudFormation's own rollback.
//
// Interrupting the client does not stop the remote creation; it runs to
// its own conclusion or timeout.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	keyName, keyPath, err := d.keys.Ensure(ctx, d.cfg)
	if err != nil {
		return nil, fmt.Errorf("key pair provisioning failed: %w", err)
	}
	d.emit(Event{Phase: PhaseKeyPair, Message: fmt.Sprintf("using key pair %s", keyName)})

	if err := d.lint(); err != nil {
		return nil, fmt.Errorf("template check failed: %w", err)
	}
	d.emit(Event{Phase: PhaseTemplate, Message: "template parameters and outputs verified"})

	stackID, err := d.submit(ctx, keyName)
	if err != nil {
		return nil, err
	}
	d.emit(Event{Phase: PhaseSubmit, Message: fmt.Sprintf("stack submitted: %s", stackID)})

	desc, err := d.waitForStack(ctx)
	if err != nil {
		return nil, err
	}
	if desc.Status.IsFailure() {
		return nil, &FailureError{
			StackName: d.cfg.StackName,
			Status:    desc.Status,
			Reason:    desc.StatusReason,
		}
	}

	outputs, err := extractOutputs(desc)
	if err != nil {
		return nil, err
	}

	return &Result{
		StackID:     stackID,
		Outputs:     outputs,
		KeyPairName: keyName,
		KeyPath:     keyPath,
	}, nil
}

// submit performs the single create call. There is no conflict or update
// handling: an existing stack name is surfaced verbatim as a fatal error.
func (d *Deployer) submit(ctx context.Context, keyName string) (string, error) {
	parameters := map[string]string{
		"Region":            d.cfg.Region,
		"HostedZoneId":      d.cfg.HostedZoneID,
		"HostedZoneName":    d.cfg.HostedZoneName,
		"SubdomainName":     d.cfg.Subdomain,
		"InstanceType":      d.cfg.InstanceType,
		"KeyPairName":       keyName,
		"BasicAuthUser":     d.cfg.BasicAuthUser,
		"BasicAuthPassword": d.cfg.BasicAuthPassword,
	}

	stackID, err := d.cloud.CreateStack(ctx, d.cfg.StackName, d.body, parameters)
	if err != nil {
		if aws.IsAlreadyExists(err) {
			return "", fmt.Errorf("stack %s already exists: %w", d.cfg.StackName, err)
		}
		return "", err
	}
	return stackID, nil
}

// waitForStack polls the stack status at a fixed interval until it
// reaches a terminal value, emitting a progress event per non-terminal
// cycle. The total planned wait is bounded by the StackWait timeout.
// Transient describe errors are retried with backoff; a missing stack is
// not retried.
func (d *Deployer) waitForStack(ctx context.Context) (*aws.StackDescription, error) {
	var waited time.Duration
	var lastStatus aws.StackStatus

	for {
		desc, err := d.describeWithRetry(ctx)
		if err != nil {
			return nil, err
		}
		lastStatus = desc.Status

		if desc.Status.IsTerminal() {
			return desc, nil
		}
		d.emit(Event{
			Phase:   PhaseStack,
			Status:  desc.Status,
			Message: fmt.Sprintf("stack status: %s, waiting", desc.Status),
		})

		if waited >= d.timeouts.StackWait {
			return nil, &TimeoutError{
				StackName:  d.cfg.StackName,
				LastStatus: lastStatus,
				Waited:     waited,
			}
		}
		if err := d.sleep(ctx, d.timeouts.PollInterval); err != nil {
			return nil, err
		}
		waited += d.timeouts.PollInterval
	}
}

// describeWithRetry queries the stack, retrying transient errors for a
// bounded number of attempts before escalating.
func (d *Deployer) describeWithRetry(ctx context.Context) (*aws.StackDescription, error) {
	var desc *aws.StackDescription
	err := retry.Do(ctx, func() error {
		s, err := d.cloud.DescribeStack(ctx, d.cfg.StackName)
		if err != nil {
			if aws.IsNotFound(err) {
				return retry.Fatal(err)
			}
			return err
		}
		desc = s
		return nil
	},
		retry.WithMaxRetries(d.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(d.timeouts.RetryInitialDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stack status: %w", err)
	}
	return desc, nil
}

// extractOutputs reads the named outputs from a completed stack. A
// missing expected output means the template and workflow disagree,
// which is an internal-consistency error.
func extractOutputs(desc *aws.StackDescription) (map[string]string, error) {
	outputs := make(map[string]string, len(template.RequiredOutputs))
	for _, key := range template.RequiredOutputs {
		value, ok := desc.Outputs[key]
		if !ok || value == "" {
			return nil, fmt.Errorf("completed stack %s is missing expected output %s", desc.Name, key)
		}
		outputs[key] = value
	}
	return outputs, nil
}

func (d *Deployer) emit(e Event) {
	if d.progress != nil {
		d.progress(e)
	}
}

func logEvent(e Event) {
	log.Printf("[%s] %s", e.Phase, e.Message)
}

// sleepWithContext sleeps for the given duration unless the context is
// done first.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ollamastack/ollamastack/internal/config"
	"github.com/ollamastack/ollamastack/internal/report"
)

// OutputsOptions carries the outputs command's flag values.
type OutputsOptions struct {
	ConfigPath string
	StackName  string
	Region     string
}

// Outputs prints the connection details of an already-deployed stack.
// The stack must have finished creating.
func Outputs(ctx context.Context, opts OutputsOptions) error {
	cfg, err := resolveOutputsConfig(opts)
	if err != nil {
		return err
	}

	creds := loadCredentials()
	client, err := newCloudClient(ctx, cfg.Region, creds)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	desc, err := client.DescribeStack(ctx, cfg.StackName)
	if err != nil {
		return fmt.Errorf("failed to describe stack %s: %w", cfg.StackName, err)
	}

	if !desc.Status.IsTerminal() {
		return fmt.Errorf("stack %s is still %s; try again once creation finishes", cfg.StackName, desc.Status)
	}
	if desc.Status.IsFailure() {
		return fmt.Errorf("stack %s is %s: %s", cfg.StackName, desc.Status, desc.StatusReason)
	}

	report.New(cfg, desc.Outputs).Render(os.Stdout)
	return nil
}

// resolveOutputsConfig loads the config file when available and lets
// the stack name and region flags override it. DNS fields come from
// the file; without them the printed URL cannot be formed.
func resolveOutputsConfig(opts OutputsOptions) (*config.Config, error) {
	cfg := &config.Config{}

	path := opts.ConfigPath
	if path == "" {
		if found, err := findConfigFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := loadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.StackName != "" {
		cfg.StackName = opts.StackName
	}
	if opts.Region != "" {
		cfg.Region = opts.Region
	}
	cfg.ApplyDefaults()

	if cfg.StackName == "" {
		return nil, fmt.Errorf("no stack name: pass --stack-name or provide a config file")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("no region: pass --region, set AWS_REGION, or provide a config file")
	}
	return cfg, nil
}

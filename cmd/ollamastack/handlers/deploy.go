// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ollamastack/ollamastack/internal/config"
	"github.com/ollamastack/ollamastack/internal/orchestration"
	"github.com/ollamastack/ollamastack/internal/platform/aws"
	"github.com/ollamastack/ollamastack/internal/report"
	"github.com/ollamastack/ollamastack/internal/ui/tui"
)

// DeployOptions carries the deploy command's flag values.
type DeployOptions struct {
	ConfigPath    string
	Flags         config.Config
	ImportKeyPair bool
	TUI           bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newCloudClient creates the AWS platform client.
	newCloudClient = func(ctx context.Context, region string, creds config.Credentials) (aws.CloudProvider, error) {
		return aws.NewRealClient(ctx, region, creds.AccessKeyID, creds.SecretAccessKey)
	}

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// loadCredentials reads AWS credentials from the environment.
	loadCredentials = config.LoadCredentials

	// loadTimeouts reads the workflow timeouts from the environment.
	loadTimeouts = config.LoadTimeouts

	// runDeployTUI runs the interactive deploy view.
	runDeployTUI = tui.RunDeployTUI

	// stdoutIsTerminal reports whether stdout is an interactive terminal.
	stdoutIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// Deploy runs the full deployment workflow:
//  1. Resolves the request from flags, config file, and environment
//  2. Ensures an EC2 key pair exists, writing the private key locally
//  3. Submits the CloudFormation stack and waits for a terminal state
//  4. Prints connection details on success
func Deploy(ctx context.Context, opts DeployOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	creds := loadCredentials()
	client, err := newCloudClient(ctx, cfg.Region, creds)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	timeouts := loadTimeouts()

	var result *orchestration.Result
	if opts.TUI || stdoutIsTerminal() {
		result, err = runDeployTUI(ctx, func(ch chan<- orchestration.Event) (*orchestration.Result, error) {
			deployer := orchestration.NewDeployer(client, cfg, timeouts,
				orchestration.WithProgress(func(e orchestration.Event) { ch <- e }))
			return deployer.Deploy(ctx)
		}, cfg.StackName, cfg.Region)
	} else {
		log.Printf("Deploying stack %s in %s", cfg.StackName, cfg.Region)
		deployer := orchestration.NewDeployer(client, cfg, timeouts)
		result, err = deployer.Deploy(ctx)
	}
	if err != nil {
		return err
	}

	report.New(cfg, result.Outputs).Render(os.Stdout)
	return nil
}

// resolveConfig assembles the deployment request. Values from the
// config file form the base; non-empty flags override them.
func resolveConfig(opts DeployOptions) (*config.Config, error) {
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

	mergeFlags(cfg, opts.Flags)
	if opts.ImportKeyPair {
		cfg.ImportKeyPair = true
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func mergeFlags(cfg *config.Config, flags config.Config) {
	if flags.Region != "" {
		cfg.Region = flags.Region
	}
	if flags.StackName != "" {
		cfg.StackName = flags.StackName
	}
	if flags.InstanceType != "" {
		cfg.InstanceType = flags.InstanceType
	}
	if flags.HostedZoneID != "" {
		cfg.HostedZoneID = flags.HostedZoneID
	}
	if flags.HostedZoneName != "" {
		cfg.HostedZoneName = flags.HostedZoneName
	}
	if flags.Subdomain != "" {
		cfg.Subdomain = flags.Subdomain
	}
	if flags.KeyPairName != "" {
		cfg.KeyPairName = flags.KeyPairName
	}
	if flags.KeyPairSavePath != "" {
		cfg.KeyPairSavePath = flags.KeyPairSavePath
	}
	if flags.BasicAuthUser != "" {
		cfg.BasicAuthUser = flags.BasicAuthUser
	}
	if flags.BasicAuthPassword != "" {
		cfg.BasicAuthPassword = flags.BasicAuthPassword
	}
}

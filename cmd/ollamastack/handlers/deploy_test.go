package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollamastack/ollamastack/internal/config"
	"github.com/ollamastack/ollamastack/internal/config/wizard"
	"github.com/ollamastack/ollamastack/internal/orchestration"
	"github.com/ollamastack/ollamastack/internal/platform/aws"
)

func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origNewCloudClient := newCloudClient
	origLoadConfigFile := loadConfigFile
	origFindConfigFile := findConfigFile
	origLoadCredentials := loadCredentials
	origLoadTimeouts := loadTimeouts
	origRunDeployTUI := runDeployTUI
	origStdoutIsTerminal := stdoutIsTerminal
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteConfig := writeConfig

	t.Cleanup(func() {
		newCloudClient = origNewCloudClient
		loadConfigFile = origLoadConfigFile
		findConfigFile = origFindConfigFile
		loadCredentials = origLoadCredentials
		loadTimeouts = origLoadTimeouts
		runDeployTUI = origRunDeployTUI
		stdoutIsTerminal = origStdoutIsTerminal
		fileExists = origFileExists
		runWizard = origRunWizard
		writeConfig = origWriteConfig
	})
}

func validFlags(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Region:            "us-east-1",
		StackName:         "test-stack",
		InstanceType:      "g4dn.xlarge",
		HostedZoneID:      "Z0123456789ABCDEFGHIJ",
		HostedZoneName:    "example.com",
		KeyPairSavePath:   t.TempDir(),
		BasicAuthUser:     "admin",
		BasicAuthPassword: "secret",
	}
}

func noConfigFile(t *testing.T) {
	t.Helper()
	findConfigFile = func() (string, error) {
		return "", errors.New("not found")
	}
}

func TestResolveConfig_FlagsOnly(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)

	cfg, err := resolveConfig(DeployOptions{Flags: validFlags(t)})
	require.NoError(t, err)
	assert.Equal(t, "test-stack", cfg.StackName)
	assert.Equal(t, "test-stack", cfg.Subdomain, "subdomain defaults to stack name")
	assert.False(t, cfg.ImportKeyPair)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)

	fileCfg := validFlags(t)
	loadConfigFile = func(_ string) (*config.Config, error) {
		cp := fileCfg
		return &cp, nil
	}

	opts := DeployOptions{
		ConfigPath: "custom.yaml",
		Flags: config.Config{
			Region:            "eu-west-1",
			BasicAuthPassword: "flag-password",
		},
		ImportKeyPair: true,
	}
	cfg, err := resolveConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region, "flag wins over file")
	assert.Equal(t, "test-stack", cfg.StackName, "file value kept")
	assert.Equal(t, "flag-password", cfg.BasicAuthPassword)
	assert.True(t, cfg.ImportKeyPair)
}

func TestResolveConfig_FileLoadError(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return nil, errors.New("parse error")
	}

	_, err := resolveConfig(DeployOptions{ConfigPath: "broken.yaml"})
	require.Error(t, err)
}

func TestResolveConfig_Invalid(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)

	flags := validFlags(t)
	flags.BasicAuthPassword = ""

	_, err := resolveConfig(DeployOptions{Flags: flags})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestDeploy_Success(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)
	stdoutIsTerminal = func() bool { return false }

	var created []string
	mock := &aws.MockClient{
		CreateStackFunc: func(_ context.Context, name, _ string, params map[string]string) (string, error) {
			created = append(created, name)
			assert.Len(t, params, 8)
			return "arn:aws:cloudformation:us-east-1:123:stack/test-stack/abc", nil
		},
	}
	newCloudClient = func(_ context.Context, _ string, _ config.Credentials) (aws.CloudProvider, error) {
		return mock, nil
	}

	flags := validFlags(t)
	err := Deploy(context.Background(), DeployOptions{Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, []string{"test-stack"}, created)

	pems, err := filepath.Glob(filepath.Join(flags.KeyPairSavePath, "*.pem"))
	require.NoError(t, err)
	assert.Len(t, pems, 1, "private key written next to the config")
}

func TestDeploy_TUIPath(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)
	stdoutIsTerminal = func() bool { return false }

	newCloudClient = func(_ context.Context, _ string, _ config.Credentials) (aws.CloudProvider, error) {
		return &aws.MockClient{}, nil
	}

	var tuiRan bool
	runDeployTUI = func(_ context.Context, deployFn func(chan<- orchestration.Event) (*orchestration.Result, error), _, _ string) (*orchestration.Result, error) {
		tuiRan = true
		ch := make(chan orchestration.Event, 64)
		return deployFn(ch)
	}

	err := Deploy(context.Background(), DeployOptions{Flags: validFlags(t), TUI: true})
	require.NoError(t, err)
	assert.True(t, tuiRan)
}

func TestDeploy_ClientError(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)
	stdoutIsTerminal = func() bool { return false }

	newCloudClient = func(_ context.Context, _ string, _ config.Credentials) (aws.CloudProvider, error) {
		return nil, errors.New("no credentials")
	}

	err := Deploy(context.Background(), DeployOptions{Flags: validFlags(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize AWS client")
}

func TestDeploy_StackFailure(t *testing.T) {
	saveAndRestoreFactories(t)
	noConfigFile(t)
	stdoutIsTerminal = func() bool { return false }

	mock := &aws.MockClient{
		DescribeStackFunc: func(_ context.Context, name string) (*aws.StackDescription, error) {
			return &aws.StackDescription{
				Name:         name,
				Status:       aws.StatusRollbackComplete,
				StatusReason: "instance failed to signal",
			}, nil
		},
	}
	newCloudClient = func(_ context.Context, _ string, _ config.Credentials) (aws.CloudProvider, error) {
		return mock, nil
	}

	err := Deploy(context.Background(), DeployOptions{Flags: validFlags(t)})
	require.Error(t, err)

	var failure *orchestration.FailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, aws.StatusRollbackComplete, failure.Status)
}

func TestInit_WritesConfig(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.Config, error) {
		return &config.Config{
			Region:         "us-east-1",
			StackName:      "wizard-stack",
			InstanceType:   wizard.DefaultInstanceType,
			HostedZoneID:   "Z0123456789ABCDEFGHIJ",
			HostedZoneName: "example.com",
			BasicAuthUser:  "admin",
		}, nil
	}

	var wrotePath string
	writeConfig = func(cfg *config.Config, path string) error {
		wrotePath = path
		assert.Equal(t, "wizard-stack", cfg.StackName)
		return nil
	}

	err := Init(context.Background(), "ollamastack.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ollamastack.yaml", wrotePath)
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.Config, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "ollamastack.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

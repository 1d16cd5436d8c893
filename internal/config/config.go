// Package config defines the deployment request, its validation rules,
// and the tunable timeout values for the stack workflow.
package config

import (
	"os"
	"strings"
)

// DefaultConfigFile is the config file name looked up in the working
// directory when no --config flag is given.
const DefaultConfigFile = "ollamastack.yaml"

// Config is the resolved deployment request. It is assembled once from
// flags, an optional config file, and the environment, then treated as
// immutable by the rest of the workflow.
//
// BasicAuthPassword is a secret: it is never written to the config file
// and never echoed in progress output.
type Config struct {
	Region          string `yaml:"region" validate:"required"`
	StackName       string `yaml:"stack_name" validate:"required,max=128"`
	InstanceType    string `yaml:"instance_type" validate:"required"`
	HostedZoneID    string `yaml:"hosted_zone_id" validate:"required"`
	HostedZoneName  string `yaml:"hosted_zone_name" validate:"required"`
	Subdomain       string `yaml:"subdomain,omitempty"`
	KeyPairName     string `yaml:"keypair_name,omitempty"`
	KeyPairSavePath string `yaml:"keypair_save_path,omitempty"`
	ImportKeyPair   bool   `yaml:"import_keypair,omitempty"`

	BasicAuthUser     string `yaml:"basic_auth_username" validate:"required"`
	BasicAuthPassword string `yaml:"-" validate:"required"`
}

// Credentials holds the AWS credentials resolved from the environment.
// They are passed explicitly into the platform client rather than read
// ambiently, so the workflow stays testable without environment mutation.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// LoadCredentials reads AWS credentials from the environment. An empty
// access key means the SDK's default credential chain applies.
func LoadCredentials() Credentials {
	return Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// ApplyDefaults fills the optional fields the user may leave empty.
// The subdomain defaults to the stack name and keys are saved to the
// working directory unless told otherwise.
func (c *Config) ApplyDefaults() {
	if c.Subdomain == "" {
		c.Subdomain = c.StackName
	}
	if c.KeyPairSavePath == "" {
		c.KeyPairSavePath = "."
	}
	if c.Region == "" {
		c.Region = os.Getenv("AWS_REGION")
	}
}

// ZoneApex returns the hosted zone name without the trailing dot that
// Route53 zone names may carry.
func (c *Config) ZoneApex() string {
	return strings.TrimSuffix(c.HostedZoneName, ".")
}

// FQDN returns the fully qualified domain name the stack will serve.
func (c *Config) FQDN() string {
	return c.Subdomain + "." + c.ZoneApex()
}

package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// cloudFormationAPI is the subset of the CloudFormation client used by
// RealClient. Narrowing to the called methods lets tests inject fakes.
type cloudFormationAPI interface {
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

// ec2API is the subset of the EC2 client used by RealClient.
type ec2API interface {
	CreateKeyPair(ctx context.Context, params *ec2.CreateKeyPairInput, optFns ...func(*ec2.Options)) (*ec2.CreateKeyPairOutput, error)
	ImportKeyPair(ctx context.Context, params *ec2.ImportKeyPairInput, optFns ...func(*ec2.Options)) (*ec2.ImportKeyPairOutput, error)
}

// Compile-time checks that the real SDK clients satisfy the narrowed interfaces.
var (
	_ cloudFormationAPI = (*cloudformation.Client)(nil)
	_ ec2API            = (*ec2.Client)(nil)
)

// RealClient implements CloudProvider using the AWS SDK.
type RealClient struct {
	cfn    cloudFormationAPI
	ec2    ec2API
	region string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithCloudFormationAPI replaces the CloudFormation client (useful for testing).
func WithCloudFormationAPI(api cloudFormationAPI) ClientOption {
	return func(c *RealClient) {
		c.cfn = api
	}
}

// WithEC2API replaces the EC2 client (useful for testing).
func WithEC2API(api ec2API) ClientOption {
	return func(c *RealClient) {
		c.ec2 = api
	}
}

// NewRealClient creates a client bound to the given region. When an access
// key is supplied it is used as a static credential, otherwise the SDK's
// default chain (environment, shared config, instance role) applies.
func NewRealClient(ctx context.Context, region, accessKeyID, secretAccessKey string, opts ...ClientOption) (*RealClient, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if accessKeyID != "" {
		loadOpts = append(loadOpts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	c := &RealClient{
		cfn:    cloudformation.NewFromConfig(cfg),
		ec2:    ec2.NewFromConfig(cfg),
		region: region,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Region returns the region the client was created for.
func (c *RealClient) Region() string {
	return c.region
}

package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// CreateStack submits the template body with the given parameters.
// Parameters are passed in sorted key order so submissions are
// deterministic. Returns the stack ID assigned by CloudFormation.
func (c *RealClient) CreateStack(ctx context.Context, name, templateBody string, parameters map[string]string) (string, error) {
	keys := make([]string, 0, len(parameters))
	for k := range parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]types.Parameter, 0, len(keys))
	for _, k := range keys {
		params = append(params, types.Parameter{
			ParameterKey:   aws.String(k),
			ParameterValue: aws.String(parameters[k]),
		})
	}

	out, err := c.cfn.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(name),
		TemplateBody: aws.String(templateBody),
		Parameters:   params,
		Capabilities: []types.Capability{
			types.CapabilityCapabilityIam,
			types.CapabilityCapabilityNamedIam,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stack %s: %w", name, err)
	}
	return aws.ToString(out.StackId), nil
}

// DescribeStack returns the current state of the named stack, including
// its outputs once the stack has completed.
func (c *RealClient) DescribeStack(ctx context.Context, name string) (*StackDescription, error) {
	out, err := c.cfn.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", name, err)
	}
	if len(out.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", name)
	}

	stack := out.Stacks[0]
	desc := &StackDescription{
		Name:         aws.ToString(stack.StackName),
		ID:           aws.ToString(stack.StackId),
		Status:       StackStatus(stack.StackStatus),
		StatusReason: aws.ToString(stack.StackStatusReason),
		Outputs:      make(map[string]string, len(stack.Outputs)),
	}
	if stack.CreationTime != nil {
		desc.CreatedTime = *stack.CreationTime
	}
	for _, o := range stack.Outputs {
		desc.Outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	return desc, nil
}

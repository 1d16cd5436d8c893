package wizard

import "github.com/charmbracelet/huh"

// RegionOption represents an AWS region choice.
type RegionOption struct {
	Value       string
	Label       string
	Description string
}

// InstanceTypeOption represents an EC2 instance type choice.
type InstanceTypeOption struct {
	Value       string
	Label       string
	Description string
}

// DefaultInstanceType is preselected in the wizard.
const DefaultInstanceType = "g4dn.xlarge"

// Regions contains the regions offered by the wizard. Any region works;
// these are the common ones with broad GPU availability.
var Regions = []RegionOption{
	{Value: "us-east-1", Label: "us-east-1", Description: "N. Virginia, USA"},
	{Value: "us-west-2", Label: "us-west-2", Description: "Oregon, USA"},
	{Value: "eu-west-1", Label: "eu-west-1", Description: "Ireland"},
	{Value: "eu-central-1", Label: "eu-central-1", Description: "Frankfurt, Germany"},
	{Value: "ap-southeast-1", Label: "ap-southeast-1", Description: "Singapore"},
	{Value: "ap-northeast-1", Label: "ap-northeast-1", Description: "Tokyo, Japan"},
}

// InstanceTypes contains recommended instance types for the model server.
var InstanceTypes = []InstanceTypeOption{
	{Value: "g4dn.xlarge", Label: "g4dn.xlarge", Description: "4 vCPU, 16GB RAM, T4 GPU"},
	{Value: "g4dn.2xlarge", Label: "g4dn.2xlarge", Description: "8 vCPU, 32GB RAM, T4 GPU"},
	{Value: "g5.xlarge", Label: "g5.xlarge", Description: "4 vCPU, 16GB RAM, A10G GPU"},
	{Value: "g5.2xlarge", Label: "g5.2xlarge", Description: "8 vCPU, 32GB RAM, A10G GPU"},
	{Value: "t3.xlarge", Label: "t3.xlarge", Description: "4 vCPU, 16GB RAM (CPU only)"},
	{Value: "m6i.2xlarge", Label: "m6i.2xlarge", Description: "8 vCPU, 32GB RAM (CPU only)"},
}

// RegionsToOptions converts RegionOption slice to huh.Option slice.
func RegionsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(Regions))
	for _, r := range Regions {
		opts = append(opts, huh.NewOption(r.Label+" - "+r.Description, r.Value))
	}
	return opts
}

// InstanceTypesToOptions converts InstanceTypeOption slice to huh.Option slice.
func InstanceTypesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(InstanceTypes))
	for _, it := range InstanceTypes {
		opts = append(opts, huh.NewOption(it.Label+" - "+it.Description, it.Value))
	}
	return opts
}

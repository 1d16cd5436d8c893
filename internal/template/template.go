// Package template carries the embedded CloudFormation template and a
// pre-submission lint that catches a malformed asset before any remote
// call is made.
package template

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed stack.yaml
var stackTemplate string

// RequiredParameters are the parameters the orchestrator passes at
// submission. The template must declare every one of them.
var RequiredParameters = []string{
	"Region",
	"HostedZoneId",
	"HostedZoneName",
	"SubdomainName",
	"InstanceType",
	"KeyPairName",
	"BasicAuthUser",
	"BasicAuthPassword",
}

// RequiredOutputs are the stack outputs the reporter reads after a
// successful creation.
var RequiredOutputs = []string{
	"InstanceId",
	"PublicIP",
	"Region",
	"KeyPairName",
}

// Body returns the raw template body for submission.
func Body() string {
	return stackTemplate
}

// Lint checks the embedded template against the orchestrator's parameter
// and output contract. The template uses CloudFormation short tags, so it
// is parsed as a yaml.Node tree rather than into plain Go values.
func Lint() error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(stackTemplate), &doc); err != nil {
		return fmt.Errorf("template is not valid YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return fmt.Errorf("template is empty")
	}
	root := doc.Content[0]

	params := mapValue(root, "Parameters")
	if params == nil {
		return fmt.Errorf("template declares no Parameters section")
	}
	declared := mappingKeys(params)
	for _, p := range RequiredParameters {
		if _, ok := declared[p]; !ok {
			return fmt.Errorf("template does not declare parameter %s", p)
		}
	}

	if err := checkNoEcho(params, "BasicAuthPassword"); err != nil {
		return err
	}

	outputs := mapValue(root, "Outputs")
	if outputs == nil {
		return fmt.Errorf("template declares no Outputs section")
	}
	declaredOutputs := mappingKeys(outputs)
	for _, o := range RequiredOutputs {
		if _, ok := declaredOutputs[o]; !ok {
			return fmt.Errorf("template does not declare output %s", o)
		}
	}

	return nil
}

// checkNoEcho verifies a secret parameter is marked NoEcho so the backend
// never echoes it in describe responses or events.
func checkNoEcho(params *yaml.Node, name string) error {
	param := mapValue(params, name)
	if param == nil {
		return fmt.Errorf("template does not declare parameter %s", name)
	}
	noEcho := mapValue(param, "NoEcho")
	if noEcho == nil || noEcho.Value != "true" {
		return fmt.Errorf("parameter %s must set NoEcho", name)
	}
	return nil
}

// mapValue returns the value node for a key in a YAML mapping node.
func mapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// mappingKeys returns the set of keys of a YAML mapping node.
func mappingKeys(node *yaml.Node) map[string]struct{} {
	keys := make(map[string]struct{})
	if node == nil || node.Kind != yaml.MappingNode {
		return keys
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys[node.Content[i].Value] = struct{}{}
	}
	return keys
}

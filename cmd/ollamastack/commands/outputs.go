package commands

import (
	"github.com/spf13/cobra"

	"github.com/ollamastack/ollamastack/cmd/ollamastack/handlers"
)

// Outputs returns the command for printing connection details of an
// already-deployed stack.
func Outputs() *cobra.Command {
	var opts handlers.OutputsOptions

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Print connection details for an existing stack",
		Long: `Print the SSH command and HTTPS endpoint of a deployed stack.

Reads the stack outputs from CloudFormation; the stack must have
finished creating.

Examples:
  # Using ollamastack.yaml in the current directory
  ollamastack outputs

  # Explicit stack
  ollamastack outputs --stack-name my-ollama --region us-east-1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Outputs(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: ollamastack.yaml)")
	cmd.Flags().StringVar(&opts.StackName, "stack-name", "", "CloudFormation stack name")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region (default: AWS_REGION)")

	return cmd
}

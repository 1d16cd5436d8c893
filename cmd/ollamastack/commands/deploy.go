package commands

import (
	"github.com/spf13/cobra"

	"github.com/ollamastack/ollamastack/cmd/ollamastack/handlers"
)

// Deploy returns the command for provisioning the Ollama stack.
//
// This command runs the complete deployment workflow: resolving the
// request from flags and an optional config file, ensuring an EC2 key
// pair, submitting the CloudFormation stack, waiting until it reaches
// a terminal state, and printing connection details.
//
// Environment variables:
//
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY: AWS credentials
//	AWS_REGION: default region when --region is not given
func Deploy() *cobra.Command {
	var opts handlers.DeployOptions

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create the Ollama stack",
		Long: `Create the CloudFormation stack serving Ollama over HTTPS.

Flags override values from the config file. If no config file is
specified, ollamastack.yaml in the current directory is used when
present. Use 'ollamastack init' to create one.

Examples:
  # Deploy using ollamastack.yaml in the current directory
  ollamastack deploy --basic-auth-password secret

  # Deploy from flags only
  ollamastack deploy --stack-name my-ollama --region us-east-1 \
    --instance-type g4dn.xlarge \
    --hosted-zone-id Z0123456789ABCDEFGHIJ --hosted-zone-name example.com \
    --basic-auth-username admin --basic-auth-password secret

  # Generate the key locally and import only the public half
  ollamastack deploy --import-keypair --basic-auth-password secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: ollamastack.yaml)")
	cmd.Flags().StringVar(&opts.Flags.Region, "region", "", "AWS region (default: AWS_REGION)")
	cmd.Flags().StringVar(&opts.Flags.StackName, "stack-name", "", "CloudFormation stack name")
	cmd.Flags().StringVar(&opts.Flags.InstanceType, "instance-type", "", "EC2 instance type")
	cmd.Flags().StringVar(&opts.Flags.HostedZoneID, "hosted-zone-id", "", "Route53 hosted zone ID")
	cmd.Flags().StringVar(&opts.Flags.HostedZoneName, "hosted-zone-name", "", "Route53 hosted zone name")
	cmd.Flags().StringVar(&opts.Flags.Subdomain, "subdomain", "", "Record name under the zone (default: stack name)")
	cmd.Flags().StringVar(&opts.Flags.KeyPairName, "keypair-name", "", "Existing EC2 key pair to reuse")
	cmd.Flags().StringVar(&opts.Flags.KeyPairSavePath, "keypair-save-path", "", "Directory for the generated .pem file (default: .)")
	cmd.Flags().StringVar(&opts.Flags.BasicAuthUser, "basic-auth-username", "", "Username protecting the HTTPS endpoint")
	cmd.Flags().StringVar(&opts.Flags.BasicAuthPassword, "basic-auth-password", "", "Password protecting the HTTPS endpoint")
	cmd.Flags().BoolVar(&opts.ImportKeyPair, "import-keypair", false, "Generate the key locally and import the public half")
	cmd.Flags().BoolVar(&opts.TUI, "tui", false, "Show interactive progress (default: auto-detect terminal)")

	return cmd
}

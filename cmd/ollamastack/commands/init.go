package commands

import (
	"github.com/spf13/cobra"

	"github.com/ollamastack/ollamastack/cmd/ollamastack/handlers"
	"github.com/ollamastack/ollamastack/internal/config"
)

// Init returns the command for interactive configuration setup.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a deployment configuration interactively",
		Long: `Create a deployment configuration file through an interactive wizard.

The wizard asks for the stack name, region, instance type, Route53 zone
and basic auth credentials, then writes the answers to a YAML file. The
basic auth password is never stored.

Examples:
  # Create ollamastack.yaml in the current directory
  ollamastack init

  # Write to a custom location
  ollamastack init -o production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFile, "Output file path")

	return cmd
}

package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ollamastack/ollamastack/internal/config"
)

// WriteConfig writes the config to a YAML file with a descriptive header.
// The basic auth password is excluded from serialization by the config
// struct's yaml tags; the header reminds the user of that.
func WriteConfig(cfg *config.Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# ollamastack deployment configuration
# Generated by: ollamastack init
# Generated at: %s
#
# The basic auth password is never stored here. Provide it with
# --basic-auth-password on each deploy.
#
# File: %s
`, time.Now().Format(time.RFC3339), outputPath)
}

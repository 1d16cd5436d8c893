package wizard

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ollamastack/ollamastack/internal/config"
)

// stackNameRegex validates stack name format: letter first, then
// letters, digits and hyphens, per CloudFormation naming rules.
var stackNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]{0,127}$`)

// hostedZoneIDRegex matches Route53 hosted zone IDs.
var hostedZoneIDRegex = regexp.MustCompile(`^Z[A-Z0-9]+$`)

// runStackGroup prompts for stack name, region and instance type.
func runStackGroup(ctx context.Context, cfg *config.Config) error {
	cfg.InstanceType = DefaultInstanceType

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stack Name").
				Description("Letters, digits and hyphens, starting with a letter").
				Placeholder("my-ollama").
				Value(&cfg.StackName).
				Validate(validateStackName),
			huh.NewSelect[string]().
				Title("Region").
				Description("AWS region to deploy into").
				Options(RegionsToOptions()...).
				Value(&cfg.Region),
			huh.NewSelect[string]().
				Title("Instance Type").
				Description("GPU instances run larger models; CPU instances are cheaper").
				Options(InstanceTypesToOptions()...).
				Value(&cfg.InstanceType),
		).Title("Stack"),
	).RunWithContext(ctx)
}

// runDNSGroup prompts for the Route53 zone and subdomain.
func runDNSGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hosted Zone ID").
				Description("Route53 hosted zone ID, e.g. Z0123456789ABCDEFGHIJ").
				Value(&cfg.HostedZoneID).
				Validate(validateHostedZoneID),
			huh.NewInput().
				Title("Hosted Zone Name").
				Description("The zone's domain name, e.g. example.com").
				Value(&cfg.HostedZoneName).
				Validate(validateZoneName),
			huh.NewInput().
				Title("Subdomain (Optional)").
				Description("Record name under the zone. Defaults to the stack name.").
				Value(&cfg.Subdomain),
		).Title("DNS"),
	).RunWithContext(ctx)
}

// runKeyPairGroup prompts for key pair handling.
func runKeyPairGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Existing Key Pair (Optional)").
				Description("Name of an EC2 key pair to reuse. Leave empty to create one.").
				Value(&cfg.KeyPairName),
			huh.NewInput().
				Title("Key Save Path (Optional)").
				Description("Directory for the generated .pem file. Defaults to the working directory.").
				Placeholder(".").
				Value(&cfg.KeyPairSavePath),
			huh.NewConfirm().
				Title("Generate key locally and import it?").
				Description("Keeps the private key off AWS; otherwise EC2 generates it").
				Value(&cfg.ImportKeyPair),
		).Title("SSH Key Pair"),
	).RunWithContext(ctx)
}

// runAccessGroup prompts for the basic auth credentials protecting the
// HTTPS endpoint. The password never reaches the config file; it is
// kept only for the current process.
func runAccessGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Basic Auth Username").
				Value(&cfg.BasicAuthUser).
				Validate(validateRequired("username is required")),
			huh.NewInput().
				Title("Basic Auth Password").
				Description("Not saved; pass it via flag or prompt on each deploy").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.BasicAuthPassword).
				Validate(validateRequired("password is required")),
		).Title("Endpoint Access"),
	).RunWithContext(ctx)
}

func validateStackName(s string) error {
	if s == "" {
		return errStackNameRequired
	}
	if !stackNameRegex.MatchString(s) {
		return errStackNameInvalid
	}
	return nil
}

func validateHostedZoneID(s string) error {
	if s == "" {
		return errZoneIDRequired
	}
	if !hostedZoneIDRegex.MatchString(s) {
		return errZoneIDInvalid
	}
	return nil
}

func validateZoneName(s string) error {
	if strings.TrimSuffix(s, ".") == "" {
		return errZoneNameRequired
	}
	return nil
}

func validateRequired(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errRequired(msg)
		}
		return nil
	}
}

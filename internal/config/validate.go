package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// stackNameRegex matches CloudFormation stack name rules: starts with a
// letter, then letters, digits, and hyphens.
var stackNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// subdomainRegex matches a single DNS label.
var subdomainRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// zoneNameRegex matches a DNS zone name, optionally with the trailing dot
// Route53 uses.
var zoneNameRegex = regexp.MustCompile(`^([a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}\.?$`)

var validate = validator.New()

// Validate checks the request before any remote call is made. Input
// errors are fatal and never retried.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid request: field %s failed %q validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("invalid request: %w", err)
	}

	if !stackNameRegex.MatchString(c.StackName) {
		return fmt.Errorf("invalid stack name %q: must start with a letter and contain only letters, digits, and hyphens", c.StackName)
	}
	if c.Subdomain != "" && !subdomainRegex.MatchString(c.Subdomain) {
		return fmt.Errorf("invalid subdomain %q: must be a single lowercase DNS label", c.Subdomain)
	}
	if !zoneNameRegex.MatchString(c.HostedZoneName) {
		return fmt.Errorf("invalid hosted zone name %q", c.HostedZoneName)
	}
	return nil
}

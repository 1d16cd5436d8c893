// Package wizard implements the interactive configuration wizard for the
// init command. It collects deployment settings through a series of huh
// forms and writes the resulting config file.
package wizard

import (
	"context"
	"fmt"

	"github.com/ollamastack/ollamastack/internal/config"
)

// RunWizard runs the interactive configuration wizard and returns the
// collected config. The context is used for cancellation support
// (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*config.Config, error) {
	cfg := &config.Config{}

	if err := runStackGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}

	if err := runDNSGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("dns: %w", err)
	}

	if err := runKeyPairGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("key pair: %w", err)
	}

	if err := runAccessGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("access: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

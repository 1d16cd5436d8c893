// Package main is the entry point for the ollamastack CLI.
//
// ollamastack provisions a self-hosted Ollama LLM server on AWS: a
// CloudFormation stack with a VPC, a single EC2 instance running Ollama
// behind an nginx reverse proxy with TLS and basic auth, and a Route53
// record pointing at it.
//
// Commands: init, deploy, outputs.
//
// For detailed usage information, run:
//
//	ollamastack --help
package main

import (
	"fmt"
	"os"

	"github.com/ollamastack/ollamastack/cmd/ollamastack/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

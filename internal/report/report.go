// Package report formats the connection details of a completed stack.
package report

import (
	"fmt"
	"io"

	"github.com/ollamastack/ollamastack/internal/config"
	"github.com/ollamastack/ollamastack/internal/keypair"
)

// Connection holds the final connection facts. It is a pure function of
// the stack outputs and the original request; building one has no side
// effects.
type Connection struct {
	Region      string
	InstanceID  string
	PublicIP    string
	KeyPairName string
	KeyPath     string
	SSHCommand  string
	URL         string
}

// New derives the connection details from a completed stack's outputs
// and the deployment request.
func New(cfg *config.Config, outputs map[string]string) *Connection {
	keyPath := keypair.PEMPath(cfg.KeyPairSavePath, outputs["KeyPairName"])
	ip := outputs["PublicIP"]

	return &Connection{
		Region:      outputs["Region"],
		InstanceID:  outputs["InstanceId"],
		PublicIP:    ip,
		KeyPairName: outputs["KeyPairName"],
		KeyPath:     keyPath,
		SSHCommand:  fmt.Sprintf("ssh -i %s ubuntu@%s", keyPath, ip),
		URL:         fmt.Sprintf("https://%s", cfg.FQDN()),
	}
}

// Render writes the connection details to w.
func (c *Connection) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Stack deployed"))
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Region:"), c.Region)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Instance ID:"), c.InstanceID)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Public IP:"), c.PublicIP)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Key pair:"), c.KeyPairName)
	fmt.Fprintf(w, "\n%s %s\n", labelStyle.Render("SSH command:"), c.SSHCommand)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Web address:"), readyStyle.Render(c.URL))
}

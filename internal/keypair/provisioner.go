// Package keypair ensures an EC2 key pair exists for the deployment and
// persists the private key locally exactly once.
package keypair

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ollamastack/ollamastack/internal/config"
	"github.com/ollamastack/ollamastack/internal/platform/aws"
	"github.com/ollamastack/ollamastack/internal/util/keygen"
)

// importKeyBits is the RSA key size used for locally generated keys.
const importKeyBits = 4096

// Provisioner creates or passes through an EC2 key pair name usable by
// the stack orchestrator.
type Provisioner struct {
	keys     aws.KeyPairManager
	now      func() time.Time
	generate func(bits int) (*keygen.KeyPair, error)
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithClock replaces the time source. Key pair names derive from the
// clock, so tests inject a fixed one.
func WithClock(now func() time.Time) Option {
	return func(p *Provisioner) { p.now = now }
}

// WithGenerator replaces the local key generator used in import mode.
func WithGenerator(generate func(bits int) (*keygen.KeyPair, error)) Option {
	return func(p *Provisioner) { p.generate = generate }
}

// NewProvisioner creates a Provisioner backed by the given key pair manager.
func NewProvisioner(keys aws.KeyPairManager, opts ...Option) *Provisioner {
	p := &Provisioner{
		keys:     keys,
		now:      time.Now,
		generate: keygen.GenerateRSA,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the generated key pair name for a stack: the stack name
// qualified by the current date and hour.
func Name(stackName string, now time.Time) string {
	return fmt.Sprintf("%s-%s-keypair", stackName, now.Format("2006010215"))
}

// PEMPath returns the private key file location for a key pair name.
// Plain string concatenation keeps relative prefixes like "./" intact so
// the reported SSH command works as printed.
func PEMPath(savePath, name string) string {
	return strings.TrimSuffix(savePath, "/") + "/" + name + ".pem"
}

// Ensure returns a key pair name and the local private key path for the
// request. A request that names an existing key pair passes through with
// no side effects. Otherwise exactly one remote key pair is created and
// its private key written to disk with owner-only permissions. All
// failures are fatal; nothing here is retried.
func (p *Provisioner) Ensure(ctx context.Context, cfg *config.Config) (string, string, error) {
	if cfg.KeyPairName != "" {
		return cfg.KeyPairName, PEMPath(cfg.KeyPairSavePath, cfg.KeyPairName), nil
	}

	info, err := os.Stat(cfg.KeyPairSavePath)
	if err != nil {
		return "", "", fmt.Errorf("key pair save path %s is not usable: %w", cfg.KeyPairSavePath, err)
	}
	if !info.IsDir() {
		return "", "", fmt.Errorf("key pair save path %s is not a directory", cfg.KeyPairSavePath)
	}

	name := Name(cfg.StackName, p.now())

	var material []byte
	if cfg.ImportKeyPair {
		material, err = p.importKey(ctx, name)
	} else {
		material, err = p.createKey(ctx, name)
	}
	if err != nil {
		return "", "", err
	}

	pemPath := PEMPath(cfg.KeyPairSavePath, name)
	if err := os.WriteFile(pemPath, material, 0400); err != nil {
		return "", "", fmt.Errorf("failed to write private key to %s: %w", pemPath, err)
	}

	log.Printf("Key pair %s created, private key saved to %s", name, pemPath)
	return name, pemPath, nil
}

// createKey asks EC2 to generate the key pair and returns the private
// key material.
func (p *Provisioner) createKey(ctx context.Context, name string) ([]byte, error) {
	material, err := p.keys.CreateKeyPair(ctx, name)
	if err != nil {
		if aws.IsAlreadyExists(err) {
			return nil, fmt.Errorf("key pair name %s already exists: %w", name, err)
		}
		return nil, err
	}
	return []byte(material), nil
}

// importKey generates the key pair locally and uploads only the public
// half. The private key never leaves this machine.
func (p *Provisioner) importKey(ctx context.Context, name string) ([]byte, error) {
	kp, err := p.generate(importKeyBits)
	if err != nil {
		return nil, err
	}
	if _, err := p.keys.ImportKeyPair(ctx, name, kp.PublicKey); err != nil {
		if aws.IsAlreadyExists(err) {
			return nil, fmt.Errorf("key pair name %s already exists: %w", name, err)
		}
		return nil, err
	}
	return kp.PrivateKeyPEM, nil
}

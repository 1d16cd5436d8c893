// Package keygen generates RSA key pairs for EC2 key pair import.
package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// KeyPair holds a private key in PEM format and the matching public key
// in authorized_keys format.
type KeyPair struct {
	PrivateKeyPEM []byte
	PublicKey     []byte
}

// GenerateRSA generates a new RSA key pair of the given size. 4096 bits
// is the usual choice for keys uploaded to EC2.
func GenerateRSA(bits int) (*KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("generated key failed validation: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})

	pub, err := ssh.NewPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}

	return &KeyPair{
		PrivateKeyPEM: privPEM,
		PublicKey:     ssh.MarshalAuthorizedKey(pub),
	}, nil
}

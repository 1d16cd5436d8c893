package keygen

import (
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRSA(t *testing.T) {
	kp, err := GenerateRSA(2048)
	require.NoError(t, err)

	block, rest := pem.Decode(kp.PrivateKeyPEM)
	require.NotNil(t, block, "private key must be valid PEM")
	assert.Equal(t, "RSA PRIVATE KEY", block.Type)
	assert.Empty(t, rest)

	assert.True(t, strings.HasPrefix(string(kp.PublicKey), "ssh-rsa "),
		"public key must be in authorized_keys format")
}

func TestGenerateRSADistinctKeys(t *testing.T) {
	a, err := GenerateRSA(2048)
	require.NoError(t, err)
	b, err := GenerateRSA(2048)
	require.NoError(t, err)

	assert.NotEqual(t, a.PrivateKeyPEM, b.PrivateKeyPEM)
}

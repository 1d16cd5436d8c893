package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// CreateKeyPair creates a new RSA key pair in EC2 and returns the private
// key material in PEM format. The material is only available from this
// call; EC2 keeps the public half.
func (c *RealClient) CreateKeyPair(ctx context.Context, name string) (string, error) {
	out, err := c.ec2.CreateKeyPair(ctx, &ec2.CreateKeyPairInput{
		KeyName: aws.String(name),
		KeyType: types.KeyTypeRsa,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create key pair %s: %w", name, err)
	}
	if out.KeyMaterial == nil {
		return "", fmt.Errorf("key pair %s created but no key material returned", name)
	}
	return aws.ToString(out.KeyMaterial), nil
}

// ImportKeyPair registers a locally generated public key (in authorized_keys
// format) under the given name and returns the key pair ID.
func (c *RealClient) ImportKeyPair(ctx context.Context, name string, publicKey []byte) (string, error) {
	out, err := c.ec2.ImportKeyPair(ctx, &ec2.ImportKeyPairInput{
		KeyName:           aws.String(name),
		PublicKeyMaterial: publicKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to import key pair %s: %w", name, err)
	}
	if out.KeyPairId == nil {
		return "", fmt.Errorf("key pair %s imported but no key pair ID returned", name)
	}
	return aws.ToString(out.KeyPairId), nil
}

package payment

import (
	"context"
	"fmt"

	"github.com/storecraft/storefront/internal/ports"
)

// CredentialResolver yields the credential a processor verifies incoming
// payment requests against.
type CredentialResolver func(ctx context.Context) (string, error)

// StaticCredential resolves to a fixed value from configuration.
func StaticCredential(value string) CredentialResolver {
	return func(_ context.Context) (string, error) {
		return value, nil
	}
}

// VaultCredential resolves the credential from a secrets storage path.
func VaultCredential(secretsRepo ports.SecretsRepository, path, key string) CredentialResolver {
	return func(ctx context.Context) (string, error) {
		secret, err := secretsRepo.GetSecrets(ctx, path)
		if err != nil {
			return "", fmt.Errorf("reading secret at %q: %w", path, err)
		}

		if secret == nil || secret.Data == nil {
			return "", fmt.Errorf("no secret data at %q", path)
		}

		data := secret.Data
		// KV v2 nests the payload under a "data" key.
		if nested, ok := data["data"].(map[string]any); ok {
			data = nested
		}

		value, ok := data[key].(string)
		if !ok {
			return "", fmt.Errorf("secret at %q has no %q value", path, key)
		}

		return value, nil
	}
}

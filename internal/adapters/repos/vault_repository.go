package repos

import (
	"context"

	"github.com/hashicorp/vault/api"
)

// VaultRepository implements the SecretsRepository interface using HashiCorp Vault.
type VaultRepository struct {
	client *api.Client
}

// NewVaultRepository creates a new Vault-backed secrets repository.
func NewVaultRepository(client *api.Client) *VaultRepository {
	return &VaultRepository{
		client: client,
	}
}

// SetToken sets the authentication token on the underlying client.
func (r *VaultRepository) SetToken(v string) {
	r.client.SetToken(v)
}

// GetSecrets reads the secret stored at the given path.
func (r *VaultRepository) GetSecrets(ctx context.Context, path string) (*api.Secret, error) {
	return r.client.Logical().ReadWithContext(ctx, path)
}

// WriteWithContext writes data to the given path.
func (r *VaultRepository) WriteWithContext(ctx context.Context, path string, data map[string]any) (*api.Secret, error) {
	return r.client.Logical().WriteWithContext(ctx, path, data)
}

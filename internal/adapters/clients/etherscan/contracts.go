package etherscan

import (
	"context"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// GetContractSource returns the verified source code entries of a
// contract. Unverified contracts yield a single entry with empty fields,
// passed through as the upstream returns it.
func (c *Client) GetContractSource(ctx context.Context, chainID int64, address string) ([]domain.ContractSource, error) {
	params := NewParams(moduleContract, "getsourcecode").Set("address", address)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.ContractSource](env)
}

// GetContractABI returns the ABI of a verified contract as a JSON string.
// Unverified contracts fail upstream with "Contract source code not
// verified", surfaced as an application error.
func (c *Client) GetContractABI(ctx context.Context, chainID int64, address string) (string, error) {
	params := NewParams(moduleContract, "getabi").Set("address", address)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

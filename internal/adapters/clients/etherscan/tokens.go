package etherscan

import (
	"context"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// GetTokenSupply returns the total supply of an ERC-20 token as a decimal
// string in the token's smallest unit.
func (c *Client) GetTokenSupply(ctx context.Context, chainID int64, contractAddress string) (string, error) {
	params := NewParams(moduleStats, "tokensupply").Set("contractaddress", contractAddress)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GetTokenInfo returns the project metadata of a token contract.
func (c *Client) GetTokenInfo(ctx context.Context, chainID int64, contractAddress string) ([]domain.TokenInfo, error) {
	params := NewParams(moduleToken, "tokeninfo").Set("contractaddress", contractAddress)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.TokenInfo](env)
}

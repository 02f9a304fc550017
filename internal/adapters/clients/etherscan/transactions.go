package etherscan

import (
	"context"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// GetTransactionStatus returns the contract-execution status of a
// transaction (whether the execution errored and why).
func (c *Client) GetTransactionStatus(ctx context.Context, chainID int64, txHash string) (*domain.ExecutionStatus, error) {
	params := NewParams(moduleTransaction, "getstatus").Set("txhash", txHash)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	status, err := decodeResult[domain.ExecutionStatus](env)
	if err != nil {
		return nil, err
	}

	return &status, nil
}

// GetReceiptStatus returns the receipt status of a post-Byzantium
// transaction ("1" success, "0" failure).
func (c *Client) GetReceiptStatus(ctx context.Context, chainID int64, txHash string) (*domain.ReceiptStatus, error) {
	params := NewParams(moduleTransaction, "gettxreceiptstatus").Set("txhash", txHash)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	status, err := decodeResult[domain.ReceiptStatus](env)
	if err != nil {
		return nil, err
	}

	return &status, nil
}

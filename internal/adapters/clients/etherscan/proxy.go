package etherscan

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// JSON-RPC proxy operations. These mirror eth_* methods; their results are
// hex strings or raw JSON objects and are passed through without
// interpretation or decoding.

// BlockNumber returns the number of the most recent block as a hex string.
func (c *Client) BlockNumber(ctx context.Context, chainID int64) (string, error) {
	params := NewParams(moduleProxy, "eth_blockNumber")

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GetBlockByNumber returns the block for the given tag. With fullTx the
// block carries complete transaction objects instead of hashes only.
func (c *Client) GetBlockByNumber(ctx context.Context, chainID int64, tag string, fullTx bool) (json.RawMessage, error) {
	params := NewParams(moduleProxy, "eth_getBlockByNumber").
		Set("tag", tag).
		Set("boolean", strconv.FormatBool(fullTx))

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return env.Result, nil
}

// GetTransactionByHash returns the transaction object for a hash, or the
// JSON null the upstream replies with for unknown hashes.
func (c *Client) GetTransactionByHash(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error) {
	params := NewParams(moduleProxy, "eth_getTransactionByHash").Set("txhash", txHash)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return env.Result, nil
}

// GetTransactionByBlockNumberAndIndex returns the transaction at the given
// position of a block. Tag and index are hex-encoded.
func (c *Client) GetTransactionByBlockNumberAndIndex(ctx context.Context, chainID int64, tag, index string) (json.RawMessage, error) {
	params := NewParams(moduleProxy, "eth_getTransactionByBlockNumberAndIndex").
		Set("tag", tag).
		Set("index", index)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return env.Result, nil
}

// GetTransactionCount returns the nonce of an address as a hex string.
func (c *Client) GetTransactionCount(ctx context.Context, chainID int64, address, tag string) (string, error) {
	params := NewParams(moduleProxy, "eth_getTransactionCount").
		Set("address", address).
		SetOptional("tag", tag)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// SendRawTransaction broadcasts a signed raw transaction and returns its
// hash. This is the one write-shaped operation and uses POST per upstream
// transport convention.
func (c *Client) SendRawTransaction(ctx context.Context, chainID int64, signedHex string) (string, error) {
	if signedHex == "" {
		return "", domain.NewValidationError("hex", "signed transaction payload is required")
	}

	params := NewParams(moduleProxy, "eth_sendRawTransaction").Set("hex", signedHex)

	env, err := c.dispatcher.Post(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GetTransactionReceipt returns the receipt object for a transaction
// hash, or JSON null for pending or unknown transactions.
func (c *Client) GetTransactionReceipt(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error) {
	params := NewParams(moduleProxy, "eth_getTransactionReceipt").Set("txhash", txHash)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return env.Result, nil
}

// Call executes a read-only message call and returns the hex-encoded
// return data. To and Data are required upstream; the check is local.
func (c *Client) Call(ctx context.Context, chainID int64, msg domain.CallMsg, tag string) (string, error) {
	if msg.To == "" {
		return "", domain.NewValidationError("to", "call target address is required")
	}

	if msg.Data == "" {
		return "", domain.NewValidationError("data", "call data is required")
	}

	params := NewParams(moduleProxy, "eth_call").
		Set("to", msg.To).
		Set("data", msg.Data).
		SetOptional("tag", tag)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GetCode returns the deployed bytecode at an address as a hex string.
func (c *Client) GetCode(ctx context.Context, chainID int64, address, tag string) (string, error) {
	params := NewParams(moduleProxy, "eth_getCode").
		Set("address", address).
		SetOptional("tag", tag)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GetStorageAt returns the value of a storage slot as a hex string.
func (c *Client) GetStorageAt(ctx context.Context, chainID int64, address, position, tag string) (string, error) {
	params := NewParams(moduleProxy, "eth_getStorageAt").
		Set("address", address).
		Set("position", position).
		SetOptional("tag", tag)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GasPrice returns the current gas price in wei as a hex string.
func (c *Client) GasPrice(ctx context.Context, chainID int64) (string, error) {
	params := NewParams(moduleProxy, "eth_gasPrice")

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// EstimateGas estimates the gas needed for a message call and returns it
// as a hex string.
func (c *Client) EstimateGas(ctx context.Context, chainID int64, msg domain.CallMsg) (string, error) {
	if msg.To == "" {
		return "", domain.NewValidationError("to", "call target address is required")
	}

	params := NewParams(moduleProxy, "eth_estimateGas").
		Set("to", msg.To).
		SetOptional("data", msg.Data).
		SetOptional("value", msg.Value).
		SetOptional("gas", msg.Gas).
		SetOptional("gasPrice", msg.GasPrice)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

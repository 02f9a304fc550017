// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrValidation, ErrNetwork, etc.)
//   - Methods represent business operations, not CRUD operations
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"
	"encoding/json"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// AccountReader exposes address-centric explorer lookups: balances,
// transaction history, token transfers, and validated blocks.
type AccountReader interface {
	// GetBalance returns the native-token balance of an address in wei,
	// as a decimal string. An empty tag defaults to the latest block.
	GetBalance(ctx context.Context, chainID int64, address, tag string) (string, error)

	// GetTransactions returns the normal transactions of an address.
	GetTransactions(ctx context.Context, chainID int64, address string, page domain.PageRange) ([]domain.Transaction, error)

	// GetInternalTransactions returns internal transactions by address or
	// by originating transaction hash. At least one identifier is required.
	GetInternalTransactions(ctx context.Context, chainID int64, query domain.InternalTxQuery) ([]domain.InternalTransaction, error)

	// GetTokenTransfers returns ERC-20 transfer events filtered by holder
	// address, token contract, or both. At least one filter is required.
	GetTokenTransfers(ctx context.Context, chainID int64, query domain.TokenTransferQuery) ([]domain.TokenTransfer, error)

	// GetMinedBlocks returns the blocks validated by an address.
	GetMinedBlocks(ctx context.Context, chainID int64, address, blockType string, page domain.PageRange) ([]domain.MinedBlock, error)
}

// ContractReader exposes verified-contract metadata lookups.
type ContractReader interface {
	// GetContractSource returns the verified source bundle of a contract.
	GetContractSource(ctx context.Context, chainID int64, address string) ([]domain.ContractSource, error)

	// GetContractABI returns the ABI of a verified contract as a JSON string.
	GetContractABI(ctx context.Context, chainID int64, address string) (string, error)
}

// TokenReader exposes token-level lookups.
type TokenReader interface {
	// GetTokenSupply returns the total supply of a token as a decimal string.
	GetTokenSupply(ctx context.Context, chainID int64, contractAddress string) (string, error)

	// GetTokenInfo returns the project metadata of a token contract.
	GetTokenInfo(ctx context.Context, chainID int64, contractAddress string) ([]domain.TokenInfo, error)
}

// TransactionReader exposes transaction outcome lookups.
type TransactionReader interface {
	// GetTransactionStatus returns the execution outcome of a transaction.
	GetTransactionStatus(ctx context.Context, chainID int64, txHash string) (*domain.ExecutionStatus, error)

	// GetReceiptStatus returns the receipt outcome of a post-Byzantium
	// transaction.
	GetReceiptStatus(ctx context.Context, chainID int64, txHash string) (*domain.ReceiptStatus, error)
}

// LogReader exposes event-log queries.
type LogReader interface {
	// GetLogs returns event logs matching the given filter.
	GetLogs(ctx context.Context, chainID int64, query domain.LogQuery) ([]domain.LogEntry, error)
}

// ProxyClient exposes the JSON-RPC node passthrough. Hex-quantity results
// are returned as hex strings; object-shaped results are returned as raw
// JSON and never reinterpreted.
type ProxyClient interface {
	// BlockNumber returns the most recent block number as a hex string.
	BlockNumber(ctx context.Context, chainID int64) (string, error)

	// GetBlockByNumber returns the block for the given tag. With fullTx
	// the block carries complete transaction objects.
	GetBlockByNumber(ctx context.Context, chainID int64, tag string, fullTx bool) (json.RawMessage, error)

	// GetTransactionByHash returns the transaction object for a hash, or
	// JSON null for unknown hashes.
	GetTransactionByHash(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error)

	// GetTransactionByBlockNumberAndIndex returns the transaction at the
	// given position of a block.
	GetTransactionByBlockNumberAndIndex(ctx context.Context, chainID int64, tag, index string) (json.RawMessage, error)

	// GetTransactionCount returns the nonce of an address as a hex string.
	GetTransactionCount(ctx context.Context, chainID int64, address, tag string) (string, error)

	// SendRawTransaction broadcasts a signed raw transaction and returns
	// its hash.
	SendRawTransaction(ctx context.Context, chainID int64, signedHex string) (string, error)

	// GetTransactionReceipt returns the receipt object for a transaction
	// hash, or JSON null for pending transactions.
	GetTransactionReceipt(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error)

	// Call executes a read-only message call and returns the hex-encoded
	// return data.
	Call(ctx context.Context, chainID int64, msg domain.CallMsg, tag string) (string, error)

	// GetCode returns the deployed bytecode of an address as a hex string.
	GetCode(ctx context.Context, chainID int64, address, tag string) (string, error)

	// GetStorageAt returns the value of a storage slot as a hex string.
	GetStorageAt(ctx context.Context, chainID int64, address, position, tag string) (string, error)

	// GasPrice returns the current gas price in wei as a hex string.
	GasPrice(ctx context.Context, chainID int64) (string, error)

	// EstimateGas estimates the gas needed for a message call.
	EstimateGas(ctx context.Context, chainID int64, msg domain.CallMsg) (string, error)
}

// ExplorerClient is the full explorer surface. Adapters implement it once;
// application services depend on the narrow reader interfaces where they
// can.
type ExplorerClient interface {
	AccountReader
	ContractReader
	TokenReader
	TransactionReader
	LogReader
	ProxyClient

	// SupportedChains returns the sorted set of supported chain identifiers.
	SupportedChains() []int64
}

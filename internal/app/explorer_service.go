// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (business workflows)
//   - Coordinate between domain and infrastructure
//   - Handle cross-cutting concerns (logging)
//   - Enforce business rules that span multiple entities
//
// What does NOT belong here:
//   - HTTP/gRPC specifics (that's adapters)
//   - Upstream wire formats (that's the explorer adapter)
//   - Core domain logic (that's the domain layer)
package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/evmscan/explorer-gateway/internal/domain"
	"github.com/evmscan/explorer-gateway/internal/platform/logging"
	"github.com/evmscan/explorer-gateway/internal/ports"
)

// ExplorerService orchestrates explorer lookups across chains.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type ExplorerService struct {
	explorer ports.ExplorerClient
	flags    ports.FeatureFlags
	executor *Executor
	logger   *slog.Logger
}

// ExplorerServiceConfig contains configuration for the explorer service.
type ExplorerServiceConfig struct {
	Explorer ports.ExplorerClient

	// Flags is optional; a nil value disables flag-gated behavior.
	Flags ports.FeatureFlags

	Logger *slog.Logger
}

// NewExplorerService creates a new explorer service with the provided
// dependencies. Panics if Explorer is nil.
func NewExplorerService(cfg ExplorerServiceConfig) *ExplorerService {
	if cfg.Explorer == nil {
		panic("ExplorerService: Explorer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "app.ExplorerService"))

	return &ExplorerService{
		explorer: cfg.Explorer,
		flags:    cfg.Flags,
		executor: NewExecutor(logger),
		logger:   logger,
	}
}

// log returns the request-scoped logger when one is present, enriched with
// the operation name and chain.
func (s *ExplorerService) log(ctx context.Context, method string, chainID int64) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	return logger.With(
		slog.String("method", method),
		slog.Int64("chain_id", chainID),
	)
}

// SupportedChains returns the sorted set of supported chain identifiers.
func (s *ExplorerService) SupportedChains() []int64 {
	return s.explorer.SupportedChains()
}

// GetBalance returns the native-token balance of an address in wei.
func (s *ExplorerService) GetBalance(ctx context.Context, chainID int64, address, tag string) (string, error) {
	s.log(ctx, "GetBalance", chainID).DebugContext(ctx, "fetching balance")

	return s.explorer.GetBalance(ctx, chainID, address, tag)
}

// GetTransactions returns the normal transactions of an address.
func (s *ExplorerService) GetTransactions(ctx context.Context, chainID int64, address string, page domain.PageRange) ([]domain.Transaction, error) {
	logger := s.log(ctx, "GetTransactions", chainID)
	logger.DebugContext(ctx, "fetching transactions")

	txs, err := s.explorer.GetTransactions(ctx, chainID, address, page)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "fetched transactions", slog.Int("count", len(txs)))

	return txs, nil
}

// GetInternalTransactions returns internal transactions by address or by
// originating transaction hash.
func (s *ExplorerService) GetInternalTransactions(ctx context.Context, chainID int64, query domain.InternalTxQuery) ([]domain.InternalTransaction, error) {
	s.log(ctx, "GetInternalTransactions", chainID).DebugContext(ctx, "fetching internal transactions")

	return s.explorer.GetInternalTransactions(ctx, chainID, query)
}

// GetTokenTransfers returns ERC-20 transfer events for an address, a token
// contract, or both.
func (s *ExplorerService) GetTokenTransfers(ctx context.Context, chainID int64, query domain.TokenTransferQuery) ([]domain.TokenTransfer, error) {
	s.log(ctx, "GetTokenTransfers", chainID).DebugContext(ctx, "fetching token transfers")

	return s.explorer.GetTokenTransfers(ctx, chainID, query)
}

// GetMinedBlocks returns the blocks validated by an address.
func (s *ExplorerService) GetMinedBlocks(ctx context.Context, chainID int64, address, blockType string, page domain.PageRange) ([]domain.MinedBlock, error) {
	s.log(ctx, "GetMinedBlocks", chainID).DebugContext(ctx, "fetching mined blocks")

	return s.explorer.GetMinedBlocks(ctx, chainID, address, blockType, page)
}

// GetContractSource returns the verified source bundle of a contract.
func (s *ExplorerService) GetContractSource(ctx context.Context, chainID int64, address string) ([]domain.ContractSource, error) {
	s.log(ctx, "GetContractSource", chainID).DebugContext(ctx, "fetching contract source")

	return s.explorer.GetContractSource(ctx, chainID, address)
}

// GetContractABI returns the ABI of a verified contract as a JSON string.
func (s *ExplorerService) GetContractABI(ctx context.Context, chainID int64, address string) (string, error) {
	s.log(ctx, "GetContractABI", chainID).DebugContext(ctx, "fetching contract ABI")

	return s.explorer.GetContractABI(ctx, chainID, address)
}

// GetTokenSupply returns the total supply of a token as a decimal string.
func (s *ExplorerService) GetTokenSupply(ctx context.Context, chainID int64, contractAddress string) (string, error) {
	s.log(ctx, "GetTokenSupply", chainID).DebugContext(ctx, "fetching token supply")

	return s.explorer.GetTokenSupply(ctx, chainID, contractAddress)
}

// GetTokenInfo returns the project metadata of a token contract.
func (s *ExplorerService) GetTokenInfo(ctx context.Context, chainID int64, contractAddress string) ([]domain.TokenInfo, error) {
	s.log(ctx, "GetTokenInfo", chainID).DebugContext(ctx, "fetching token info")

	return s.explorer.GetTokenInfo(ctx, chainID, contractAddress)
}

// GetTransactionStatus returns the execution outcome of a transaction.
func (s *ExplorerService) GetTransactionStatus(ctx context.Context, chainID int64, txHash string) (*domain.ExecutionStatus, error) {
	s.log(ctx, "GetTransactionStatus", chainID).DebugContext(ctx, "fetching transaction status")

	return s.explorer.GetTransactionStatus(ctx, chainID, txHash)
}

// GetReceiptStatus returns the receipt outcome of a transaction.
func (s *ExplorerService) GetReceiptStatus(ctx context.Context, chainID int64, txHash string) (*domain.ReceiptStatus, error) {
	s.log(ctx, "GetReceiptStatus", chainID).DebugContext(ctx, "fetching receipt status")

	return s.explorer.GetReceiptStatus(ctx, chainID, txHash)
}

// GetLogs returns event logs matching the given filter.
func (s *ExplorerService) GetLogs(ctx context.Context, chainID int64, query domain.LogQuery) ([]domain.LogEntry, error) {
	logger := s.log(ctx, "GetLogs", chainID)
	logger.DebugContext(ctx, "fetching logs")

	entries, err := s.explorer.GetLogs(ctx, chainID, query)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "fetched logs", slog.Int("count", len(entries)))

	return entries, nil
}

// BlockNumber returns the most recent block number as a hex string.
func (s *ExplorerService) BlockNumber(ctx context.Context, chainID int64) (string, error) {
	return s.explorer.BlockNumber(ctx, chainID)
}

// GetBlockByNumber returns the block for the given tag.
func (s *ExplorerService) GetBlockByNumber(ctx context.Context, chainID int64, tag string, fullTx bool) (json.RawMessage, error) {
	return s.explorer.GetBlockByNumber(ctx, chainID, tag, fullTx)
}

// GetTransactionByHash returns the transaction object for a hash.
func (s *ExplorerService) GetTransactionByHash(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error) {
	return s.explorer.GetTransactionByHash(ctx, chainID, txHash)
}

// GetTransactionByBlockNumberAndIndex returns the transaction at the given
// position of a block.
func (s *ExplorerService) GetTransactionByBlockNumberAndIndex(ctx context.Context, chainID int64, tag, index string) (json.RawMessage, error) {
	return s.explorer.GetTransactionByBlockNumberAndIndex(ctx, chainID, tag, index)
}

// GetTransactionCount returns the nonce of an address as a hex string.
func (s *ExplorerService) GetTransactionCount(ctx context.Context, chainID int64, address, tag string) (string, error) {
	return s.explorer.GetTransactionCount(ctx, chainID, address, tag)
}

// GetTransactionReceipt returns the receipt object for a transaction hash.
func (s *ExplorerService) GetTransactionReceipt(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error) {
	return s.explorer.GetTransactionReceipt(ctx, chainID, txHash)
}

// Call executes a read-only message call.
func (s *ExplorerService) Call(ctx context.Context, chainID int64, msg domain.CallMsg, tag string) (string, error) {
	return s.explorer.Call(ctx, chainID, msg, tag)
}

// GetCode returns the deployed bytecode of an address.
func (s *ExplorerService) GetCode(ctx context.Context, chainID int64, address, tag string) (string, error) {
	return s.explorer.GetCode(ctx, chainID, address, tag)
}

// GetStorageAt returns the value of a storage slot.
func (s *ExplorerService) GetStorageAt(ctx context.Context, chainID int64, address, position, tag string) (string, error) {
	return s.explorer.GetStorageAt(ctx, chainID, address, position, tag)
}

// GasPrice returns the current gas price in wei as a hex string.
func (s *ExplorerService) GasPrice(ctx context.Context, chainID int64) (string, error) {
	return s.explorer.GasPrice(ctx, chainID)
}

// EstimateGas estimates the gas needed for a message call.
func (s *ExplorerService) EstimateGas(ctx context.Context, chainID int64, msg domain.CallMsg) (string, error) {
	return s.explorer.EstimateGas(ctx, chainID, msg)
}

// AddressOverview aggregates the balance and nonce of an address.
type AddressOverview struct {
	Address          string `json:"address"`
	Balance          string `json:"balance"`
	TransactionCount string `json:"transaction_count"`
}

// GetAddressOverview fetches the balance and transaction count of an
// address concurrently.
func (s *ExplorerService) GetAddressOverview(ctx context.Context, chainID int64, address string) (*AddressOverview, error) {
	logger := s.log(ctx, "GetAddressOverview", chainID)
	logger.DebugContext(ctx, "fetching address overview")

	balance, nonce, err := Parallel2(ctx,
		func(ctx context.Context) (string, error) {
			return s.explorer.GetBalance(ctx, chainID, address, "")
		},
		func(ctx context.Context) (string, error) {
			return s.explorer.GetTransactionCount(ctx, chainID, address, "latest")
		},
	)
	if err != nil {
		return nil, err
	}

	return &AddressOverview{
		Address:          address,
		Balance:          balance,
		TransactionCount: nonce,
	}, nil
}

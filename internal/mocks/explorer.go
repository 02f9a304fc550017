// Package mocks contains hand-maintained test doubles for the port
// interfaces, in the expecter style used across the service tests.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// MockExplorerClient is a mock implementation of ports.ExplorerClient.
type MockExplorerClient struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewMockExplorerClient creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockExplorerClient(t mockConstructorTestingT) *MockExplorerClient {
	m := &MockExplorerClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockExplorerClient_Expecter provides the fluent expectation API.
type MockExplorerClient_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for setting up mock expectations.
func (m *MockExplorerClient) EXPECT() *MockExplorerClient_Expecter {
	return &MockExplorerClient_Expecter{mock: &m.Mock}
}

func rawMessage(v any) json.RawMessage {
	if v == nil {
		return nil
	}

	return v.(json.RawMessage)
}

func (m *MockExplorerClient) SupportedChains() []int64 {
	ret := m.Called()

	if ret.Get(0) == nil {
		return nil
	}

	return ret.Get(0).([]int64)
}

func (m *MockExplorerClient) GetBalance(ctx context.Context, chainID int64, address, tag string) (string, error) {
	ret := m.Called(ctx, chainID, address, tag)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetTransactions(ctx context.Context, chainID int64, address string, page domain.PageRange) ([]domain.Transaction, error) {
	ret := m.Called(ctx, chainID, address, page)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.Transaction), ret.Error(1)
}

func (m *MockExplorerClient) GetInternalTransactions(ctx context.Context, chainID int64, query domain.InternalTxQuery) ([]domain.InternalTransaction, error) {
	ret := m.Called(ctx, chainID, query)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.InternalTransaction), ret.Error(1)
}

func (m *MockExplorerClient) GetTokenTransfers(ctx context.Context, chainID int64, query domain.TokenTransferQuery) ([]domain.TokenTransfer, error) {
	ret := m.Called(ctx, chainID, query)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.TokenTransfer), ret.Error(1)
}

func (m *MockExplorerClient) GetMinedBlocks(ctx context.Context, chainID int64, address, blockType string, page domain.PageRange) ([]domain.MinedBlock, error) {
	ret := m.Called(ctx, chainID, address, blockType, page)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.MinedBlock), ret.Error(1)
}

func (m *MockExplorerClient) GetContractSource(ctx context.Context, chainID int64, address string) ([]domain.ContractSource, error) {
	ret := m.Called(ctx, chainID, address)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.ContractSource), ret.Error(1)
}

func (m *MockExplorerClient) GetContractABI(ctx context.Context, chainID int64, address string) (string, error) {
	ret := m.Called(ctx, chainID, address)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetTokenSupply(ctx context.Context, chainID int64, contractAddress string) (string, error) {
	ret := m.Called(ctx, chainID, contractAddress)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetTokenInfo(ctx context.Context, chainID int64, contractAddress string) ([]domain.TokenInfo, error) {
	ret := m.Called(ctx, chainID, contractAddress)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.TokenInfo), ret.Error(1)
}

func (m *MockExplorerClient) GetTransactionStatus(ctx context.Context, chainID int64, txHash string) (*domain.ExecutionStatus, error) {
	ret := m.Called(ctx, chainID, txHash)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).(*domain.ExecutionStatus), ret.Error(1)
}

func (m *MockExplorerClient) GetReceiptStatus(ctx context.Context, chainID int64, txHash string) (*domain.ReceiptStatus, error) {
	ret := m.Called(ctx, chainID, txHash)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).(*domain.ReceiptStatus), ret.Error(1)
}

func (m *MockExplorerClient) GetLogs(ctx context.Context, chainID int64, query domain.LogQuery) ([]domain.LogEntry, error) {
	ret := m.Called(ctx, chainID, query)

	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}

	return ret.Get(0).([]domain.LogEntry), ret.Error(1)
}

func (m *MockExplorerClient) BlockNumber(ctx context.Context, chainID int64) (string, error) {
	ret := m.Called(ctx, chainID)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetBlockByNumber(ctx context.Context, chainID int64, tag string, fullTx bool) (json.RawMessage, error) {
	ret := m.Called(ctx, chainID, tag, fullTx)

	return rawMessage(ret.Get(0)), ret.Error(1)
}

func (m *MockExplorerClient) GetTransactionByHash(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error) {
	ret := m.Called(ctx, chainID, txHash)

	return rawMessage(ret.Get(0)), ret.Error(1)
}

func (m *MockExplorerClient) GetTransactionByBlockNumberAndIndex(ctx context.Context, chainID int64, tag, index string) (json.RawMessage, error) {
	ret := m.Called(ctx, chainID, tag, index)

	return rawMessage(ret.Get(0)), ret.Error(1)
}

func (m *MockExplorerClient) GetTransactionCount(ctx context.Context, chainID int64, address, tag string) (string, error) {
	ret := m.Called(ctx, chainID, address, tag)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) SendRawTransaction(ctx context.Context, chainID int64, signedHex string) (string, error) {
	ret := m.Called(ctx, chainID, signedHex)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetTransactionReceipt(ctx context.Context, chainID int64, txHash string) (json.RawMessage, error) {
	ret := m.Called(ctx, chainID, txHash)

	return rawMessage(ret.Get(0)), ret.Error(1)
}

func (m *MockExplorerClient) Call(ctx context.Context, chainID int64, msg domain.CallMsg, tag string) (string, error) {
	ret := m.Called(ctx, chainID, msg, tag)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetCode(ctx context.Context, chainID int64, address, tag string) (string, error) {
	ret := m.Called(ctx, chainID, address, tag)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GetStorageAt(ctx context.Context, chainID int64, address, position, tag string) (string, error) {
	ret := m.Called(ctx, chainID, address, position, tag)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) GasPrice(ctx context.Context, chainID int64) (string, error) {
	ret := m.Called(ctx, chainID)

	return ret.String(0), ret.Error(1)
}

func (m *MockExplorerClient) EstimateGas(ctx context.Context, chainID int64, msg domain.CallMsg) (string, error) {
	ret := m.Called(ctx, chainID, msg)

	return ret.String(0), ret.Error(1)
}

func (e *MockExplorerClient_Expecter) SupportedChains() *mock.Call {
	return e.mock.On("SupportedChains")
}

func (e *MockExplorerClient_Expecter) GetBalance(ctx, chainID, address, tag any) *mock.Call {
	return e.mock.On("GetBalance", ctx, chainID, address, tag)
}

func (e *MockExplorerClient_Expecter) GetTransactions(ctx, chainID, address, page any) *mock.Call {
	return e.mock.On("GetTransactions", ctx, chainID, address, page)
}

func (e *MockExplorerClient_Expecter) GetInternalTransactions(ctx, chainID, query any) *mock.Call {
	return e.mock.On("GetInternalTransactions", ctx, chainID, query)
}

func (e *MockExplorerClient_Expecter) GetTokenTransfers(ctx, chainID, query any) *mock.Call {
	return e.mock.On("GetTokenTransfers", ctx, chainID, query)
}

func (e *MockExplorerClient_Expecter) GetMinedBlocks(ctx, chainID, address, blockType, page any) *mock.Call {
	return e.mock.On("GetMinedBlocks", ctx, chainID, address, blockType, page)
}

func (e *MockExplorerClient_Expecter) GetContractSource(ctx, chainID, address any) *mock.Call {
	return e.mock.On("GetContractSource", ctx, chainID, address)
}

func (e *MockExplorerClient_Expecter) GetContractABI(ctx, chainID, address any) *mock.Call {
	return e.mock.On("GetContractABI", ctx, chainID, address)
}

func (e *MockExplorerClient_Expecter) GetTokenSupply(ctx, chainID, contractAddress any) *mock.Call {
	return e.mock.On("GetTokenSupply", ctx, chainID, contractAddress)
}

func (e *MockExplorerClient_Expecter) GetTokenInfo(ctx, chainID, contractAddress any) *mock.Call {
	return e.mock.On("GetTokenInfo", ctx, chainID, contractAddress)
}

func (e *MockExplorerClient_Expecter) GetTransactionStatus(ctx, chainID, txHash any) *mock.Call {
	return e.mock.On("GetTransactionStatus", ctx, chainID, txHash)
}

func (e *MockExplorerClient_Expecter) GetReceiptStatus(ctx, chainID, txHash any) *mock.Call {
	return e.mock.On("GetReceiptStatus", ctx, chainID, txHash)
}

func (e *MockExplorerClient_Expecter) GetLogs(ctx, chainID, query any) *mock.Call {
	return e.mock.On("GetLogs", ctx, chainID, query)
}

func (e *MockExplorerClient_Expecter) BlockNumber(ctx, chainID any) *mock.Call {
	return e.mock.On("BlockNumber", ctx, chainID)
}

func (e *MockExplorerClient_Expecter) GetBlockByNumber(ctx, chainID, tag, fullTx any) *mock.Call {
	return e.mock.On("GetBlockByNumber", ctx, chainID, tag, fullTx)
}

func (e *MockExplorerClient_Expecter) GetTransactionByHash(ctx, chainID, txHash any) *mock.Call {
	return e.mock.On("GetTransactionByHash", ctx, chainID, txHash)
}

func (e *MockExplorerClient_Expecter) GetTransactionByBlockNumberAndIndex(ctx, chainID, tag, index any) *mock.Call {
	return e.mock.On("GetTransactionByBlockNumberAndIndex", ctx, chainID, tag, index)
}

func (e *MockExplorerClient_Expecter) GetTransactionCount(ctx, chainID, address, tag any) *mock.Call {
	return e.mock.On("GetTransactionCount", ctx, chainID, address, tag)
}

func (e *MockExplorerClient_Expecter) SendRawTransaction(ctx, chainID, signedHex any) *mock.Call {
	return e.mock.On("SendRawTransaction", ctx, chainID, signedHex)
}

func (e *MockExplorerClient_Expecter) GetTransactionReceipt(ctx, chainID, txHash any) *mock.Call {
	return e.mock.On("GetTransactionReceipt", ctx, chainID, txHash)
}

func (e *MockExplorerClient_Expecter) Call(ctx, chainID, msg, tag any) *mock.Call {
	return e.mock.On("Call", ctx, chainID, msg, tag)
}

func (e *MockExplorerClient_Expecter) GetCode(ctx, chainID, address, tag any) *mock.Call {
	return e.mock.On("GetCode", ctx, chainID, address, tag)
}

func (e *MockExplorerClient_Expecter) GetStorageAt(ctx, chainID, address, position, tag any) *mock.Call {
	return e.mock.On("GetStorageAt", ctx, chainID, address, position, tag)
}

func (e *MockExplorerClient_Expecter) GasPrice(ctx, chainID any) *mock.Call {
	return e.mock.On("GasPrice", ctx, chainID)
}

func (e *MockExplorerClient_Expecter) EstimateGas(ctx, chainID, msg any) *mock.Call {
	return e.mock.On("EstimateGas", ctx, chainID, msg)
}

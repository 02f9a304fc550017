package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

func TestChainStatuses_PartialFailure(t *testing.T) {
	svc, mockClient := newTestService(t)

	mockClient.EXPECT().SupportedChains().Return([]int64{1, 10, 137})
	mockClient.EXPECT().BlockNumber(mock.Anything, int64(1)).Return("0x10d4f", nil)
	mockClient.EXPECT().BlockNumber(mock.Anything, int64(10)).
		Return("", domain.NewNetworkError("proxy.eth_blockNumber", context.DeadlineExceeded))
	mockClient.EXPECT().BlockNumber(mock.Anything, int64(137)).Return("0x3b9aca0", nil)

	statuses := svc.ChainStatuses(context.Background())

	require.Len(t, statuses, 3)

	byChain := make(map[int64]ChainStatus, len(statuses))
	for _, s := range statuses {
		byChain[s.ChainID] = s
	}

	assert.True(t, byChain[1].Healthy)
	assert.Equal(t, "0x10d4f", byChain[1].BlockNumber)

	assert.False(t, byChain[10].Healthy)
	assert.NotEmpty(t, byChain[10].Error)

	assert.True(t, byChain[137].Healthy)
}

func TestChainStatuses_PreservesChainOrder(t *testing.T) {
	svc, mockClient := newTestService(t)

	mockClient.EXPECT().SupportedChains().Return([]int64{1, 10, 137})
	mockClient.EXPECT().BlockNumber(mock.Anything, mock.Anything).Return("0x1", nil)

	statuses := svc.ChainStatuses(context.Background())

	require.Len(t, statuses, 3)
	assert.Equal(t, int64(1), statuses[0].ChainID)
	assert.Equal(t, int64(10), statuses[1].ChainID)
	assert.Equal(t, int64(137), statuses[2].ChainID)
}

func TestChainStatuses_NoChains(t *testing.T) {
	svc, mockClient := newTestService(t)

	mockClient.EXPECT().SupportedChains().Return(nil)

	statuses := svc.ChainStatuses(context.Background())

	assert.Empty(t, statuses)
}

package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeUnsupportedChain, "chain 999 is not supported")

	assert.Equal(t, ErrorCodeUnsupportedChain, resp.Error.Code)
	assert.Equal(t, "chain 999 is not supported", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
	assert.Empty(t, resp.TraceID)
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	details := map[string]string{"address": "must be a valid 0x-prefixed address"}

	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", details)

	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, details, resp.Error.Details)
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeUnsupportedChain, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUpstreamRejected, http.StatusUnprocessableEntity},
		{ErrorCodeUpstreamUnreachable, http.StatusGatewayTimeout},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeUpstreamHTTP, http.StatusBadGateway},
		{ErrorCodeUpstreamProtocol, http.StatusBadGateway},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestChainRequest_DefaultsToMainnet(t *testing.T) {
	r := ChainRequest{}
	assert.Equal(t, int64(DefaultChainID), r.Chain())

	r = ChainRequest{ChainID: 137}
	assert.Equal(t, int64(137), r.Chain())
}

func TestPageRequest_ToPageRange(t *testing.T) {
	tests := []struct {
		name     string
		request  PageRequest
		expected domain.PageRange
	}{
		{
			name:     "zero request stays zero",
			request:  PageRequest{},
			expected: domain.PageRange{},
		},
		{
			name:    "page without offset gets the default page size",
			request: PageRequest{Page: 2},
			expected: domain.PageRange{
				Page:   2,
				Offset: DefaultOffset,
			},
		},
		{
			name: "explicit values pass through",
			request: PageRequest{
				StartBlock: "0",
				EndBlock:   "99999999",
				Page:       1,
				Offset:     25,
				Sort:       "desc",
			},
			expected: domain.PageRange{
				StartBlock: "0",
				EndBlock:   "99999999",
				Page:       1,
				Offset:     25,
				Sort:       "desc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.ToPageRange())
		})
	}
}

func TestValidate_AddressRequest(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{"valid address", "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae", false},
		{"missing address", "", true},
		{"not hex", "0xZZZ0295669a9fd93d5f28d9ec85e40f4cb697bae", true},
		{"wrong length", "0xde0b2956", true},
		{"no prefix", "de0b295669a9fd93d5f28d9ec85e40f4cb697bae", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&AddressRequest{Address: tt.address})

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_TxHash(t *testing.T) {
	valid := "0x40eb908387324f2b575b4879cd9d7188f69c8fc9d87c901b9e2daaea4b442170"

	require.NoError(t, Validate(&TxHashRequest{Hash: valid}))

	tests := []string{
		"",
		"0x40eb9083",
		valid + "00",
		"40eb908387324f2b575b4879cd9d7188f69c8fc9d87c901b9e2daaea4b442170",
	}
	for _, hash := range tests {
		assert.Error(t, Validate(&TxHashRequest{Hash: hash}), "hash %q", hash)
	}
}

func TestValidate_BlockTag(t *testing.T) {
	valid := []string{"latest", "earliest", "pending", "0x10d4f", ""}
	for _, tag := range valid {
		assert.NoError(t, Validate(&BalanceRequest{
			AddressRequest: AddressRequest{Address: "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"},
			Tag:            tag,
		}), "tag %q", tag)
	}

	invalid := []string{"newest", "0x", "12345"}
	for _, tag := range invalid {
		assert.Error(t, Validate(&BalanceRequest{
			AddressRequest: AddressRequest{Address: "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"},
			Tag:            tag,
		}), "tag %q", tag)
	}
}

func TestValidate_BroadcastRequest(t *testing.T) {
	require.NoError(t, Validate(&BroadcastRequest{SignedHex: "0xf86c0a85"}))

	assert.Error(t, Validate(&BroadcastRequest{SignedHex: ""}))
	assert.Error(t, Validate(&BroadcastRequest{SignedHex: "f86c0a85"}))
	assert.Error(t, Validate(&BroadcastRequest{SignedHex: "0xf86c0a85", ChainID: -1}))
}

func TestValidationErrors_ExtractsFieldMessages(t *testing.T) {
	err := Validate(&LogsRequest{
		Address:         "nonsense",
		Topic01Operator: "xor",
	})

	require.Error(t, err)
	require.True(t, IsValidationError(err))

	fields := ValidationErrors(err)
	assert.Contains(t, fields, "address")
	assert.Contains(t, fields, "topic0_1_opr")
}

func TestNewListResponse_NormalizesNil(t *testing.T) {
	resp := NewListResponse[string](nil)

	require.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Count)

	resp = NewListResponse([]string{"a", "b"})
	assert.Equal(t, 2, resp.Count)
}

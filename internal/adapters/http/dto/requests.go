package dto

// DefaultChainID is the chain used when a request does not name one.
const DefaultChainID = 1

// ChainRequest carries the chain selector shared by every explorer route.
type ChainRequest struct {
	// ChainID selects the target chain. Defaults to Ethereum mainnet.
	ChainID int64 `form:"chain_id" validate:"omitempty,gt=0"`
}

// Chain returns the requested chain identifier with the default applied.
func (r *ChainRequest) Chain() int64 {
	if r.ChainID == 0 {
		return DefaultChainID
	}

	return r.ChainID
}

// AddressRequest validates a path-bound account or contract address.
// The Address field is populated from the URL path after query binding.
type AddressRequest struct {
	ChainRequest

	Address string `form:"-" validate:"required,eth_addr"`
}

// BalanceRequest is the query surface of the balance lookup.
type BalanceRequest struct {
	AddressRequest

	Tag string `form:"tag" validate:"omitempty,block_tag"`
}

// TransactionListRequest is the query surface of an address transaction
// listing.
type TransactionListRequest struct {
	AddressRequest
	PageRequest
}

// InternalTxByAddressRequest lists internal transactions for an address.
type InternalTxByAddressRequest struct {
	AddressRequest
	PageRequest
}

// InternalTxByHashRequest lists the internal transactions spawned by one
// transaction. The Hash field is populated from the URL path.
type InternalTxByHashRequest struct {
	ChainRequest

	Hash string `form:"-" validate:"required,tx_hash"`
}

// TokenTransferRequest lists ERC-20 transfers. The address comes from the
// path; the token contract filter is optional.
type TokenTransferRequest struct {
	AddressRequest
	PageRequest

	ContractAddress string `form:"contract_address" validate:"omitempty,eth_addr"`
}

// MinedBlocksRequest lists the blocks validated by an address.
type MinedBlocksRequest struct {
	AddressRequest
	PageRequest

	BlockType string `form:"block_type" validate:"omitempty,oneof=blocks uncles"`
}

// TxHashRequest validates a path-bound transaction hash.
type TxHashRequest struct {
	ChainRequest

	Hash string `form:"-" validate:"required,tx_hash"`
}

// LogsRequest is the query surface of the event-log filter. Topics beyond
// the first require an operator joining them to their predecessor.
type LogsRequest struct {
	ChainRequest

	Address string `form:"address" validate:"omitempty,eth_addr"`

	FromBlock string `form:"from_block" validate:"omitempty,number"`
	ToBlock   string `form:"to_block" validate:"omitempty,number"`

	Page   int `form:"page" validate:"omitempty,gte=1"`
	Offset int `form:"offset" validate:"omitempty,gte=1,lte=10000"`

	Topic0 string `form:"topic0" validate:"omitempty,hex_data"`
	Topic1 string `form:"topic1" validate:"omitempty,hex_data"`
	Topic2 string `form:"topic2" validate:"omitempty,hex_data"`
	Topic3 string `form:"topic3" validate:"omitempty,hex_data"`

	Topic01Operator string `form:"topic0_1_opr" validate:"omitempty,oneof=and or"`
	Topic12Operator string `form:"topic1_2_opr" validate:"omitempty,oneof=and or"`
	Topic23Operator string `form:"topic2_3_opr" validate:"omitempty,oneof=and or"`
}

// BlockTagRequest validates a path-bound block tag plus the full-bodied
// transaction switch.
type BlockTagRequest struct {
	ChainRequest

	Tag string `form:"-" validate:"required,block_tag"`

	Full bool `form:"full"`
}

// TransactionAtIndexRequest addresses a transaction by block tag and
// position. Both come from the URL path.
type TransactionAtIndexRequest struct {
	ChainRequest

	Tag   string `form:"-" validate:"required,block_tag"`
	Index string `form:"-" validate:"required,hex_data"`
}

// TaggedAddressRequest is an address lookup qualified by a block tag,
// used for nonce and code reads.
type TaggedAddressRequest struct {
	AddressRequest

	Tag string `form:"tag" validate:"omitempty,block_tag"`
}

// StorageRequest addresses one storage slot of a contract.
type StorageRequest struct {
	AddressRequest

	Position string `form:"-" validate:"required,hex_data"`
	Tag      string `form:"tag" validate:"omitempty,block_tag"`
}

// BroadcastRequest is the JSON body of a raw-transaction broadcast.
type BroadcastRequest struct {
	ChainID   int64  `json:"chain_id" validate:"omitempty,gt=0"`
	SignedHex string `json:"hex" validate:"required,hex_data"`
}

// Chain returns the requested chain identifier with the default applied.
func (r *BroadcastRequest) Chain() int64 {
	if r.ChainID == 0 {
		return DefaultChainID
	}

	return r.ChainID
}

// CallRequest is the JSON body of a read-only message call or gas
// estimate.
type CallRequest struct {
	ChainID int64 `json:"chain_id" validate:"omitempty,gt=0"`

	To       string `json:"to" validate:"required,eth_addr"`
	Data     string `json:"data" validate:"omitempty,hex_data"`
	Value    string `json:"value" validate:"omitempty,hex_data"`
	Gas      string `json:"gas" validate:"omitempty,hex_data"`
	GasPrice string `json:"gas_price" validate:"omitempty,hex_data"`

	Tag string `json:"tag" validate:"omitempty,block_tag"`
}

// Chain returns the requested chain identifier with the default applied.
func (r *CallRequest) Chain() int64 {
	if r.ChainID == 0 {
		return DefaultChainID
	}

	return r.ChainID
}

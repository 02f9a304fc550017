package domain

// Query option types for the explorer list operations. Optional fields
// left at their zero value are omitted from the outbound request entirely,
// so the upstream API applies its own defaulting.

// PageRange bounds a list operation by block window and result page.
type PageRange struct {
	// StartBlock and EndBlock bound the block window, decimal strings.
	StartBlock string
	EndBlock   string

	// Page and Offset select a result page; zero means upstream default.
	Page   int
	Offset int

	// Sort is "asc" or "desc"; empty means upstream default.
	Sort string
}

// InternalTxQuery identifies an internal-transaction lookup.
// At least one of Address or TxHash must be set.
type InternalTxQuery struct {
	Address string
	TxHash  string

	PageRange
}

// TokenTransferQuery identifies a token-transfer lookup.
// At least one of Address or ContractAddress must be set.
type TokenTransferQuery struct {
	Address         string
	ContractAddress string

	PageRange
}

// LogQuery selects event logs by block window, emitting address, and
// indexed topics. Topic operators combine adjacent topic filters with
// "and" or "or" upstream semantics.
type LogQuery struct {
	Address   string
	FromBlock string
	ToBlock   string

	Topic0 string
	Topic1 string
	Topic2 string
	Topic3 string

	Topic01Operator string
	Topic12Operator string
	Topic23Operator string

	Page   int
	Offset int
}

// CallMsg is the argument set of a proxy eth_call or eth_estimateGas.
// To and Data are required by eth_call; the remaining fields are optional.
type CallMsg struct {
	To       string
	Data     string
	Value    string
	Gas      string
	GasPrice string
}

package etherscan

import (
	"context"
	"log/slog"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// applyPageRange adds the optional block-window and paging arguments.
// Zero values are omitted so the upstream applies its own defaults.
func applyPageRange(params *Params, r domain.PageRange) *Params {
	return params.
		SetOptional("startblock", r.StartBlock).
		SetOptional("endblock", r.EndBlock).
		SetOptionalInt("page", r.Page).
		SetOptionalInt("offset", r.Offset).
		SetOptional("sort", r.Sort)
}

// GetBalance returns the native-token balance of an address in wei, as a
// decimal string. Tag defaults upstream to the latest block when empty.
func (c *Client) GetBalance(ctx context.Context, chainID int64, address, tag string) (string, error) {
	params := NewParams(moduleAccount, "balance").
		Set("address", address).
		SetOptional("tag", tag)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return "", err
	}

	return decodeResult[string](env)
}

// GetTransactions returns the normal transactions of an address.
func (c *Client) GetTransactions(ctx context.Context, chainID int64, address string, page domain.PageRange) ([]domain.Transaction, error) {
	params := applyPageRange(NewParams(moduleAccount, "txlist").Set("address", address), page)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.Transaction](env)
}

// GetInternalTransactions returns internal (message-call) transactions,
// looked up either by address or by originating transaction hash. The
// upstream routes both lookups through the same action; at least one of
// the two identifying fields must be present, checked locally before any
// network call.
func (c *Client) GetInternalTransactions(ctx context.Context, chainID int64, query domain.InternalTxQuery) ([]domain.InternalTransaction, error) {
	if query.Address == "" && query.TxHash == "" {
		return nil, domain.NewValidationError("address", "either address or txhash is required")
	}

	params := applyPageRange(
		NewParams(moduleAccount, "txlistinternal").
			SetOptional("address", query.Address).
			SetOptional("txhash", query.TxHash),
		query.PageRange,
	)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.InternalTransaction](env)
}

// GetTokenTransfers returns ERC-20 transfer events, filtered by holder
// address, token contract, or both. At least one of the two identifying
// fields must be present, checked locally before any network call.
func (c *Client) GetTokenTransfers(ctx context.Context, chainID int64, query domain.TokenTransferQuery) ([]domain.TokenTransfer, error) {
	if query.Address == "" && query.ContractAddress == "" {
		return nil, domain.NewValidationError("address", "either address or contractaddress is required")
	}

	params := applyPageRange(
		NewParams(moduleAccount, "tokentx").
			SetOptional("address", query.Address).
			SetOptional("contractaddress", query.ContractAddress),
		query.PageRange,
	)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.TokenTransfer](env)
}

// GetMinedBlocks returns the blocks validated by an address. BlockType is
// "blocks" or "uncles"; empty defaults upstream to "blocks".
func (c *Client) GetMinedBlocks(ctx context.Context, chainID int64, address, blockType string, page domain.PageRange) ([]domain.MinedBlock, error) {
	c.logger.DebugContext(ctx, "fetching mined blocks",
		slog.Int64("chain_id", chainID),
		slog.String("address", address),
	)

	params := NewParams(moduleAccount, "getminedblocks").
		Set("address", address).
		SetOptional("blocktype", blockType).
		SetOptionalInt("page", page.Page).
		SetOptionalInt("offset", page.Offset)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.MinedBlock](env)
}

package etherscan

import (
	"context"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// GetLogs returns event logs matching the query. Topic filters and their
// combining operators are passed through as given; the upstream rejects
// inconsistent combinations itself.
func (c *Client) GetLogs(ctx context.Context, chainID int64, query domain.LogQuery) ([]domain.LogEntry, error) {
	params := NewParams(moduleLogs, "getLogs").
		SetOptional("address", query.Address).
		SetOptional("fromBlock", query.FromBlock).
		SetOptional("toBlock", query.ToBlock).
		SetOptional("topic0", query.Topic0).
		SetOptional("topic1", query.Topic1).
		SetOptional("topic2", query.Topic2).
		SetOptional("topic3", query.Topic3).
		SetOptional("topic0_1_opr", query.Topic01Operator).
		SetOptional("topic1_2_opr", query.Topic12Operator).
		SetOptional("topic2_3_opr", query.Topic23Operator).
		SetOptionalInt("page", query.Page).
		SetOptionalInt("offset", query.Offset)

	env, err := c.dispatcher.Get(ctx, chainID, params)
	if err != nil {
		return nil, err
	}

	return decodeResult[[]domain.LogEntry](env)
}

package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// flagVerifyBroadcast gates the post-broadcast lookup that confirms the
// transaction is known to the network. On by default; disabling it makes
// broadcasts return as soon as the upstream accepts them.
const flagVerifyBroadcast = "verify-broadcast"

// BroadcastInput carries a signed raw transaction for submission.
type BroadcastInput struct {
	ChainID   int64
	SignedHex string
}

// BroadcastResult is the outcome of a broadcast.
type BroadcastResult struct {
	TxHash   string `json:"tx_hash"`
	Verified bool   `json:"verified"`
}

// broadcastState threads the hash and verification outcome between steps.
type broadcastState struct {
	txHash   string
	verified bool
}

// BroadcastTransaction submits a signed raw transaction through the
// transactional execution pattern: the payload is validated before any
// network call, the broadcast is performed exactly once, and the resulting
// hash is looked up to confirm the network has seen the transaction.
func (s *ExplorerService) BroadcastTransaction(ctx context.Context, input BroadcastInput) (*BroadcastResult, error) {
	op := Operation[BroadcastInput, string, broadcastState, *BroadcastResult]{
		Name: "broadcast_transaction",

		Validate: func(ctx context.Context, in BroadcastInput) error {
			if in.SignedHex == "" {
				return domain.NewValidationError("hex", "signed transaction payload is required")
			}

			if !strings.HasPrefix(in.SignedHex, "0x") {
				return domain.NewValidationError("hex", "payload must be 0x-prefixed hex")
			}

			return nil
		},

		Perform: func(ctx context.Context, in BroadcastInput) (string, error) {
			return s.explorer.SendRawTransaction(ctx, in.ChainID, in.SignedHex)
		},

		Verify: func(ctx context.Context, in BroadcastInput, txHash string) (broadcastState, error) {
			state := broadcastState{txHash: txHash}

			if s.flags != nil && !s.flags.IsEnabled(ctx, flagVerifyBroadcast, true) {
				return state, nil
			}

			// A node that just accepted the broadcast may briefly not
			// return it yet; an empty or null lookup is not a failure,
			// it only leaves the result unverified.
			tx, err := s.explorer.GetTransactionByHash(ctx, in.ChainID, txHash)
			if err != nil {
				s.log(ctx, "BroadcastTransaction", in.ChainID).WarnContext(ctx,
					"broadcast accepted but lookup failed",
					slog.Any("error", err),
				)

				return state, nil
			}

			state.verified = len(tx) > 0 && string(tx) != "null"

			return state, nil
		},

		Respond: func(ctx context.Context, in BroadcastInput, state broadcastState) (*BroadcastResult, error) {
			return &BroadcastResult{
				TxHash:   state.txHash,
				Verified: state.verified,
			}, nil
		},
	}

	return Execute(ctx, s.executor, op, input)
}

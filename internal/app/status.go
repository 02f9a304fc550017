package app

import (
	"context"
	"log/slog"
)

// chainProbeLimit bounds how many chains are probed at once so a status
// sweep does not burst the upstream rate limit.
const chainProbeLimit = 4

// ChainStatus is the probe outcome for one chain.
type ChainStatus struct {
	ChainID     int64  `json:"chain_id"`
	Healthy     bool   `json:"healthy"`
	BlockNumber string `json:"block_number,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ChainStatuses probes every supported chain concurrently by requesting
// its current block number. Individual chain failures do not abort the
// sweep; each failure is reported in its own entry.
func (s *ExplorerService) ChainStatuses(ctx context.Context) []ChainStatus {
	chains := s.explorer.SupportedChains()

	probes := make([]func(context.Context) (ChainStatus, error), len(chains))
	for i, chainID := range chains {
		probes[i] = func(ctx context.Context) (ChainStatus, error) {
			blockNumber, err := s.explorer.BlockNumber(ctx, chainID)
			if err != nil {
				return ChainStatus{ChainID: chainID, Error: err.Error()}, nil
			}

			return ChainStatus{
				ChainID:     chainID,
				Healthy:     true,
				BlockNumber: blockNumber,
			}, nil
		}
	}

	results := ParallelPartialLimit(ctx, chainProbeLimit, probes...)

	statuses := make([]ChainStatus, len(results))
	unhealthy := 0

	for i, r := range results {
		statuses[i] = r.Value
		if !r.Value.Healthy {
			unhealthy++
		}
	}

	if unhealthy > 0 {
		s.logger.WarnContext(ctx, "chain status sweep found unhealthy chains",
			slog.Int("total", len(statuses)),
			slog.Int("unhealthy", unhealthy),
		)
	}

	return statuses
}

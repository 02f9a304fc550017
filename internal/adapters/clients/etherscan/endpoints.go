package etherscan

import (
	"sort"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// defaultEndpoints is the fixed chain-ID to base-URL table. The set is
// closed: resolving an identifier outside it fails rather than falling
// back to a default network, because wrong-chain data looks superficially
// valid and would be a correctness hazard.
var defaultEndpoints = map[int64]string{
	1:        "https://api.etherscan.io/api",        // Ethereum mainnet
	10:       "https://api-optimistic.etherscan.io/api", // OP Mainnet
	25:       "https://api.cronoscan.com/api",       // Cronos
	56:       "https://api.bscscan.com/api",         // BNB Smart Chain
	100:      "https://api.gnosisscan.io/api",       // Gnosis
	137:      "https://api.polygonscan.com/api",     // Polygon PoS
	250:      "https://api.ftmscan.com/api",         // Fantom
	1101:     "https://api-zkevm.polygonscan.com/api", // Polygon zkEVM
	1284:     "https://api-moonbeam.moonscan.io/api", // Moonbeam
	8453:     "https://api.basescan.org/api",        // Base
	17000:    "https://api-holesky.etherscan.io/api", // Holesky testnet
	42161:    "https://api.arbiscan.io/api",         // Arbitrum One
	42220:    "https://api.celoscan.io/api",         // Celo
	43114:    "https://api.snowtrace.io/api",        // Avalanche C-Chain
	59144:    "https://api.lineascan.build/api",     // Linea
	534352:   "https://api.scrollscan.com/api",      // Scroll
	11155111: "https://api-sepolia.etherscan.io/api", // Sepolia testnet
}

// Resolver maps a chain identifier to the base URL of its explorer API.
// The mapping is immutable after construction and safe for unlimited
// concurrent readers.
type Resolver struct {
	endpoints map[int64]string
	supported []int64
}

// NewResolver creates a resolver over the built-in endpoint table.
func NewResolver() *Resolver {
	return NewStaticResolver(defaultEndpoints)
}

// NewResolverWithOverrides creates a resolver over the built-in endpoint
// table with per-chain overrides applied on top. Overrides may replace a
// known chain's base URL or add a chain absent from the built-in table.
func NewResolverWithOverrides(overrides map[int64]string) *Resolver {
	merged := make(map[int64]string, len(defaultEndpoints)+len(overrides))
	for id, base := range defaultEndpoints {
		merged[id] = base
	}
	for id, base := range overrides {
		merged[id] = base
	}

	return NewStaticResolver(merged)
}

// NewStaticResolver creates a resolver over an explicit endpoint table.
// Used by tests to point chains at fake upstreams.
func NewStaticResolver(endpoints map[int64]string) *Resolver {
	owned := make(map[int64]string, len(endpoints))
	supported := make([]int64, 0, len(endpoints))

	for id, base := range endpoints {
		owned[id] = base
		supported = append(supported, id)
	}

	sort.Slice(supported, func(i, j int) bool { return supported[i] < supported[j] })

	return &Resolver{endpoints: owned, supported: supported}
}

// Resolve returns the base URL for a chain identifier. Deterministic, no
// I/O. Unknown identifiers raise domain.UnsupportedChainError listing the
// full supported set.
func (r *Resolver) Resolve(chainID int64) (string, error) {
	base, ok := r.endpoints[chainID]
	if !ok {
		return "", domain.NewUnsupportedChainError(chainID, r.supported)
	}

	return base, nil
}

// Supported returns the sorted set of supported chain identifiers.
func (r *Resolver) Supported() []int64 {
	ids := make([]int64, len(r.supported))
	copy(ids, r.supported)

	return ids
}

// Package etherscan implements the adapter for Etherscan-family
// block-explorer APIs. It acts as an Anti-Corruption Layer: the upstream
// envelope and JSON-RPC proxy reply shapes are reconciled into the single
// domain.Envelope shape here, upstream failures are classified into the
// domain error taxonomy, and nothing upstream-specific leaks past this
// package.
//
// The package has three cooperating parts:
//
//   - Resolver: the fixed chain-ID to base-URL table. Fails closed on
//     unknown identifiers so a request can never silently land on the
//     wrong network.
//   - Dispatcher: performs exactly one outbound request per call,
//     injecting the API key, splitting routing parameters from operation
//     arguments on POST, and classifying transport and HTTP failures.
//   - Client: the operation facade, one method per supported explorer
//     operation, each building its parameter set and enforcing the
//     cross-field preconditions the upstream imposes.
package etherscan

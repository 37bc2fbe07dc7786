// Package kernel provides the primitives shared by every aggregate of the sales domain.
//
// The package includes:
//   - ID: the numeric identifier of persisted records
//   - Quantity: an amount of goods in kilos and groups
//   - Role: an authorization role name
//   - UUID: an identifier for things outside the store, such as integration events
//
// All primitives are immutable values and safe for concurrent use.
package kernel

// Package services holds the reconciliation engine of the sales domain: the
// stateless services that compare order requests with their sales.
//
// The services are:
//   - QuantityReconciler: how much of each requested product is still unsold
//   - TotalsCalculator: line, sale and tax totals of a sale
//   - LifecycleGatekeeper: whether a sale may be edited or deleted
//   - OrderSaleValidator: the gather-all rule pipeline run before an upsert
//
// None of them perform I/O. Application handlers load the aggregates and pass
// them in, so every rule can be tested with plain values.
package services

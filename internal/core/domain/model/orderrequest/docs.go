// Package orderrequest models what a customer asked for: the order request
// aggregate with its requested products and their fixed commercial terms.
//
// Order requests are read-only for the sales service. They are loaded to
// compute remaining quantities and to check that sales honour the requested
// prices and weights.
package orderrequest

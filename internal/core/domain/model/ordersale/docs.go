// Package ordersale models the order sale aggregate: a priced, partial
// fulfilment of an order request together with its sold line items.
//
// Sales are soft deleted. A deactivated sale and its deactivated products stay
// in storage but stop counting against the quantities of the order request.
package ordersale

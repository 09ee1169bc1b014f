// Package settlement turns per-expense cost splits into a currency-normalized
// debt ledger and nets mutual debts into a settlement plan.
//
// Everything here is pure and synchronous: callers fetch participants, rate
// tables and expenses up front and persist the result afterwards. The
// package also holds the share-token rules that gate unauthenticated reads
// of a stored result.
package settlement

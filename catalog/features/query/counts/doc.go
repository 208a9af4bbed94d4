// Package counts implements the dashboard summary query.
//
// Loans are not tracked as records, so active loans are the sum of all borrowed lists and
// reservations the sum of all reserved lists. The overdue count is always zero.
package counts

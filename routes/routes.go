// Package routes provides the usage-control API route constants shared by
// the client and its tests to prevent path mismatches.
package routes

const (
	// TransactionsAuthorize is the authorization-check endpoint (GET).
	// Status 200 means authorized, 409 means denied; both carry a
	// decodable XML body.
	TransactionsAuthorize = "/transactions/authorize.xml"

	// Transactions is the usage-report endpoint (POST, form-encoded).
	Transactions = "/transactions.xml"
)

// Package order contains the Order aggregate: a commercial transaction
// tagged as a sale or a purchase, with the client, provider and payer
// parties, a price and an optional link to the sale order it fulfills.
package order

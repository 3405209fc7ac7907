// Package model defines the auction types shared across the service.
//
// Conventions:
//   - Amounts: coins as delivered by the upstream API (int64)
//   - Timestamps: int64 milliseconds since Unix epoch, stored verbatim
//   - Auctions are immutable once fetched and identified by UUID
package model

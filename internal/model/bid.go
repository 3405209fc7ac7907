package model

import (
	"cmp"
	"slices"
)

// Bid is a single bid placed on an auction.
type Bid struct {
	AuctionID string
	Bidder    string
	ProfileID string
	Amount    int64
	Timestamp int64 // ms since epoch
}

// Compare orders bids by amount only. Bids with the same amount compare as
// equal even when bidder or timestamp differ.
func (b Bid) Compare(other Bid) int {
	return cmp.Compare(b.Amount, other.Amount)
}

// Equal reports whether two bids have the same amount.
func (b Bid) Equal(other Bid) bool {
	return b.Compare(other) == 0
}

// SortBids sorts bids ascending by amount, keeping the original order of
// bids with equal amounts.
func SortBids(bids []Bid) {
	slices.SortStableFunc(bids, func(a, b Bid) int {
		return a.Compare(b)
	})
}

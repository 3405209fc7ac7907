package model

// Auction is a single auction house listing.
type Auction struct {
	UUID             string   // Auction identifier
	Auctioneer       string   // Seller player id
	ProfileID        string   // Seller profile id
	Coop             []string // Co-op member ids
	Start            int64    // Start time (ms since epoch)
	End              int64    // End time (ms since epoch)
	ItemName         string   // Display name, original case
	ItemLore         string   // Lore text
	Extra            string   // Opaque extra text
	Category         string   // Item category
	Tier             string   // Rarity tier
	StartingBid      int64    // Starting bid amount
	ItemBytes        string   // Opaque serialized item payload
	Claimed          bool     // Whether the auction has been claimed
	HighestBidAmount int64    // Highest bid so far
	Bids             []Bid    // Bids in upstream order, nil when absent
	BIN              bool     // Buy-it-now listing
}

// Page is one fetched page of the auction dataset.
type Page struct {
	Success       bool
	Page          int
	TotalPages    int
	TotalAuctions int
	LastUpdated   int64     // ms since epoch
	Auctions      []Auction // Never nil after decoding
}

// TopBid returns the greatest bid on the auction. Bids that tie on amount
// compare equal, so the last one seen wins.
func (a Auction) TopBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	top := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Compare(top) >= 0 {
			top = b
		}
	}
	return top, true
}

package api

// AuctionPageResponse from GET /skyblock/auctions?page=N
type AuctionPageResponse struct {
	Success       bool         `json:"success"`
	Cause         string       `json:"cause,omitempty"`
	Page          int          `json:"page"`
	TotalPages    int          `json:"totalPages"`
	TotalAuctions int          `json:"totalAuctions"`
	LastUpdated   int64        `json:"lastUpdated"`
	Auctions      []APIAuction `json:"auctions"`
}

// APIAuction represents an auction from the Hypixel API.
type APIAuction struct {
	UUID       string   `json:"uuid"`
	Auctioneer string   `json:"auctioneer"`
	ProfileID  string   `json:"profile_id"`
	Coop       []string `json:"coop"`

	// Timestamps (ms since epoch)
	Start int64 `json:"start"`
	End   int64 `json:"end"`

	ItemName  string `json:"item_name"`
	ItemLore  string `json:"item_lore"`
	Extra     string `json:"extra"`
	Category  string `json:"category"`
	Tier      string `json:"tier"`
	ItemBytes string `json:"item_bytes"`

	StartingBid      int64    `json:"starting_bid"`
	HighestBidAmount int64    `json:"highest_bid_amount"`
	Claimed          bool     `json:"claimed"`
	Bids             []APIBid `json:"bids"`
	BIN              bool     `json:"bin"`
}

// APIBid represents a bid on an auction.
type APIBid struct {
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	ProfileID string `json:"profile_id"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// errorBody is the body Hypixel sends alongside error statuses.
type errorBody struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

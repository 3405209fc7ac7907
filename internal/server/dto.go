package server

import (
	"github.com/rickgao/skyblock-ah/internal/cache"
	"github.com/rickgao/skyblock-ah/internal/model"
)

// Response DTOs
type BidResponse struct {
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	ProfileID string `json:"profile_id"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

type AuctionResponse struct {
	UUID             string        `json:"uuid"`
	Auctioneer       string        `json:"auctioneer"`
	ProfileID        string        `json:"profile_id"`
	Coop             []string      `json:"coop"`
	Start            int64         `json:"start"`
	End              int64         `json:"end"`
	ItemName         string        `json:"item_name"`
	ItemLore         string        `json:"item_lore"`
	Extra            string        `json:"extra"`
	Category         string        `json:"category"`
	Tier             string        `json:"tier"`
	StartingBid      int64         `json:"starting_bid"`
	Claimed          bool          `json:"claimed"`
	HighestBidAmount int64         `json:"highest_bid_amount"`
	Bids             []BidResponse `json:"bids"`
	BIN              bool          `json:"bin"`
}

type ItemResponse struct {
	Name     string            `json:"name"`
	Count    int               `json:"count"`
	Auctions []AuctionResponse `json:"auctions"`
}

type HealthResponse struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Cache   cache.Status `json:"cache"`
}

func toAuctionResponse(a model.Auction) AuctionResponse {
	bids := make([]BidResponse, len(a.Bids))
	for i, b := range a.Bids {
		bids[i] = BidResponse{
			AuctionID: b.AuctionID,
			Bidder:    b.Bidder,
			ProfileID: b.ProfileID,
			Amount:    b.Amount,
			Timestamp: b.Timestamp,
		}
	}
	coop := a.Coop
	if coop == nil {
		coop = []string{}
	}
	return AuctionResponse{
		UUID:             a.UUID,
		Auctioneer:       a.Auctioneer,
		ProfileID:        a.ProfileID,
		Coop:             coop,
		Start:            a.Start,
		End:              a.End,
		ItemName:         a.ItemName,
		ItemLore:         a.ItemLore,
		Extra:            a.Extra,
		Category:         a.Category,
		Tier:             a.Tier,
		StartingBid:      a.StartingBid,
		Claimed:          a.Claimed,
		HighestBidAmount: a.HighestBidAmount,
		Bids:             bids,
		BIN:              a.BIN,
	}
}

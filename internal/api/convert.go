package api

import "github.com/rickgao/skyblock-ah/internal/model"

// ToModel converts an APIAuction to model.Auction.
func (a *APIAuction) ToModel() model.Auction {
	var bids []model.Bid
	if a.Bids != nil {
		bids = make([]model.Bid, len(a.Bids))
		for i := range a.Bids {
			bids[i] = a.Bids[i].ToModel()
		}
	}

	return model.Auction{
		UUID:             a.UUID,
		Auctioneer:       a.Auctioneer,
		ProfileID:        a.ProfileID,
		Coop:             a.Coop,
		Start:            a.Start,
		End:              a.End,
		ItemName:         a.ItemName,
		ItemLore:         a.ItemLore,
		Extra:            a.Extra,
		Category:         a.Category,
		Tier:             a.Tier,
		StartingBid:      a.StartingBid,
		ItemBytes:        a.ItemBytes,
		Claimed:          a.Claimed,
		HighestBidAmount: a.HighestBidAmount,
		Bids:             bids,
		BIN:              a.BIN,
	}
}

// ToModel converts an APIBid to model.Bid.
func (b *APIBid) ToModel() model.Bid {
	return model.Bid{
		AuctionID: b.AuctionID,
		Bidder:    b.Bidder,
		ProfileID: b.ProfileID,
		Amount:    b.Amount,
		Timestamp: b.Timestamp,
	}
}

// ToModel converts an AuctionPageResponse to model.Page. A missing auctions
// array becomes an empty slice.
func (r *AuctionPageResponse) ToModel() model.Page {
	auctions := make([]model.Auction, len(r.Auctions))
	for i := range r.Auctions {
		auctions[i] = r.Auctions[i].ToModel()
	}

	return model.Page{
		Success:       r.Success,
		Page:          r.Page,
		TotalPages:    r.TotalPages,
		TotalAuctions: r.TotalAuctions,
		LastUpdated:   r.LastUpdated,
		Auctions:      auctions,
	}
}

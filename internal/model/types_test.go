package model

import "testing"

func TestBidCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Bid
		want int
	}{
		{"lower amount", Bid{Amount: 100}, Bid{Amount: 200}, -1},
		{"higher amount", Bid{Amount: 300}, Bid{Amount: 200}, 1},
		{"same amount", Bid{Amount: 200}, Bid{Amount: 200}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Equality looks at the amount only. Two different bidders placing the same
// amount at different times are equal under this ordering.
func TestBidEqual_IgnoresBidderAndTimestamp(t *testing.T) {
	a := Bid{AuctionID: "a1", Bidder: "alice", ProfileID: "p1", Amount: 500, Timestamp: 1000}
	b := Bid{AuctionID: "a1", Bidder: "bob", ProfileID: "p2", Amount: 500, Timestamp: 2000}

	if !a.Equal(b) {
		t.Error("bids with equal amounts should be equal")
	}
	if a.Compare(b) != 0 || b.Compare(a) != 0 {
		t.Errorf("Compare() = %d/%d, want 0/0", a.Compare(b), b.Compare(a))
	}

	c := Bid{Bidder: "alice", Amount: 501, Timestamp: 1000}
	if a.Equal(c) {
		t.Error("bids with different amounts should not be equal")
	}
}

func TestSortBids(t *testing.T) {
	bids := []Bid{
		{Bidder: "c", Amount: 300},
		{Bidder: "a", Amount: 100},
		{Bidder: "x", Amount: 200},
		{Bidder: "y", Amount: 200},
	}

	SortBids(bids)

	want := []string{"a", "x", "y", "c"}
	for i, b := range bids {
		if b.Bidder != want[i] {
			t.Errorf("bids[%d].Bidder = %q, want %q", i, b.Bidder, want[i])
		}
	}
}

func TestAuctionTopBid(t *testing.T) {
	t.Run("no bids", func(t *testing.T) {
		if _, ok := (Auction{}).TopBid(); ok {
			t.Error("expected no top bid")
		}
	})

	t.Run("highest amount wins", func(t *testing.T) {
		a := Auction{Bids: []Bid{{Bidder: "a", Amount: 10}, {Bidder: "b", Amount: 30}, {Bidder: "c", Amount: 20}}}
		top, ok := a.TopBid()
		if !ok {
			t.Fatal("expected a top bid")
		}
		if top.Bidder != "b" {
			t.Errorf("TopBid().Bidder = %q, want %q", top.Bidder, "b")
		}
	})

	t.Run("tie keeps last seen", func(t *testing.T) {
		a := Auction{Bids: []Bid{{Bidder: "a", Amount: 30}, {Bidder: "b", Amount: 30}}}
		top, _ := a.TopBid()
		if top.Bidder != "b" {
			t.Errorf("TopBid().Bidder = %q, want %q", top.Bidder, "b")
		}
	})
}

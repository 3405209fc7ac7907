package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rickgao/skyblock-ah/internal/model"
)

const auctionsPath = "/skyblock/auctions"

var (
	// ErrUnsuccessful is returned when a page decodes but reports success=false.
	ErrUnsuccessful = errors.New("api reported unsuccessful response")

	// ErrPageMismatch is returned when the API answers with a different page
	// than the one requested.
	ErrPageMismatch = errors.New("response page does not match request")

	// ErrInvalidPage is returned for negative page indexes.
	ErrInvalidPage = errors.New("page index must be >= 0")
)

// GetAuctionPage fetches one raw page of the auction house.
func (c *Client) GetAuctionPage(ctx context.Context, page int) (*AuctionPageResponse, error) {
	if page < 0 {
		return nil, fmt.Errorf("get auction page %d: %w", page, ErrInvalidPage)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var resp AuctionPageResponse
	if err := c.get(ctx, auctionsPath, query, &resp); err != nil {
		return nil, fmt.Errorf("get auction page %d: %w", page, err)
	}

	if !resp.Success {
		if resp.Cause != "" {
			return nil, fmt.Errorf("get auction page %d: %w: %s", page, ErrUnsuccessful, resp.Cause)
		}
		return nil, fmt.Errorf("get auction page %d: %w", page, ErrUnsuccessful)
	}
	if resp.Page != page {
		return nil, fmt.Errorf("get auction page %d: %w (got %d)", page, ErrPageMismatch, resp.Page)
	}

	return &resp, nil
}

// FetchPage fetches one page and converts it to the model representation.
func (c *Client) FetchPage(ctx context.Context, page int) (model.Page, error) {
	resp, err := c.GetAuctionPage(ctx, page)
	if err != nil {
		return model.Page{}, err
	}
	return resp.ToModel(), nil
}

// Package server exposes the cached auction index over HTTP.
//
// Routes:
//
//	GET /items             item names joined by <br>
//	GET /api/items         item names (JSON)
//	GET /api/items/:name   auctions for one item name (JSON)
//	GET /health            cache status
//	GET /ws                refresh event stream (websocket)
//
// Any other path is served from the configured static directory.
package server

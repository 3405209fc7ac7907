// Package api provides the Hypixel SkyBlock REST client used to read the
// auction house.
//
// REST endpoint:
//   - Production: https://api.hypixel.net/v2
//
// The auction house is served page by page from GET /skyblock/auctions?page=N.
// Every page reports the total page count, so page 0 is always fetched first.
package api

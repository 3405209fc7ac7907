// Package index builds the name-keyed auction index from fetched pages.
//
// Build is pure: the same ordered pages always produce the same index, no
// matter in which order the pages finished fetching. An Index is never
// modified after Build returns, so it can be shared freely between readers.
package index

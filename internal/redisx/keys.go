package redisx

import "time"

const (
	// Cached JSON body of GET /menu.
	KeyMenu = "catalog:menu"

	// Cached JSON body of GET /stores.
	KeyStores = "catalog:stores"
)

var (
	// Catalog rows change rarely; a short TTL keeps the cache honest
	// without an invalidation protocol. Postgres stays the truth.
	TTLCatalog = 5 * time.Minute
)

package catalog

import "context"

// Reader serves the menu and store catalog. Two implementations exist:
// PostgresReader queries the database directly, RemoteReader proxies another
// instance's HTTP API. The strategy is picked once at startup.
type Reader interface {
	ListMenu(ctx context.Context) ([]MenuItem, error)
	ListStores(ctx context.Context) ([]Store, error)
}

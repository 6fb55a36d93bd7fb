package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// RemoteReader fetches the catalog from another instance's HTTP API.
type RemoteReader struct {
	BaseURL string
	Client  *http.Client
}

func NewRemoteReader(baseURL string) *RemoteReader {
	return &RemoteReader{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RemoteReader) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var out []MenuItem
	if err := r.get(ctx, "/menu", &out); err != nil {
		return nil, err
	}
	// The API already sorts; keep the ordering contract even if the
	// remote side does not.
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *RemoteReader) ListStores(ctx context.Context) ([]Store, error) {
	var out []Store
	if err := r.get(ctx, "/stores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RemoteReader) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog api %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog api %s: decode: %w", path, err)
	}
	return nil
}

package instance

import (
	"context"

	"github.com/fedipeek/fedipeek/internal/domain"
)

// Fetcher bundles the metadata client and mapper behind the single
// operation handlers care about.
type Fetcher struct {
	client *Client
	mapper *Mapper
}

// NewFetcher creates a fetcher from client options.
func NewFetcher(opts Options) *Fetcher {
	return &Fetcher{
		client: NewClient(opts),
		mapper: NewMapper(),
	}
}

// Fetch retrieves a host's metadata and normalizes it for display.
func (f *Fetcher) Fetch(ctx context.Context, host string) (*domain.Metadata, error) {
	doc, err := f.client.FetchDocument(ctx, host)
	if err != nil {
		return nil, err
	}
	return f.mapper.MapMetadata(doc), nil
}

package upstream

import (
	"context"
	"net/url"

	"github.com/JustJay7/court-viewer/internal/config"
)

// LookupServices serves code tables, one table per category.
type LookupServices interface {
	Codes(ctx context.Context, table string) ([]LookupCode, error)
}

// LocationServices resolves court locations and their regions.
type LocationServices interface {
	Locations(ctx context.Context) ([]Location, error)
	Region(ctx context.Context, agencyCode string) (*Region, error)
}

type LookupClient struct {
	*client
}

var _ LookupServices = (*LookupClient)(nil)

func NewLookupClient(endpoint config.ServiceEndpoint, opts Options) *LookupClient {
	return &LookupClient{client: newClient(endpoint, opts)}
}

func (c *LookupClient) Codes(ctx context.Context, table string) ([]LookupCode, error) {
	var out []LookupCode
	if err := c.getJSON(ctx, "Codes:"+table, "/codes/"+url.PathEscape(table), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type LocationClient struct {
	*client
}

var _ LocationServices = (*LocationClient)(nil)

func NewLocationClient(endpoint config.ServiceEndpoint, opts Options) *LocationClient {
	return &LocationClient{client: newClient(endpoint, opts)}
}

func (c *LocationClient) Locations(ctx context.Context) ([]Location, error) {
	var out []Location
	if err := c.getJSON(ctx, "Locations", "/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LocationClient) Region(ctx context.Context, agencyCode string) (*Region, error) {
	var out Region
	path := "/locations/" + url.PathEscape(agencyCode) + "/region"
	if err := c.getJSON(ctx, "Region", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

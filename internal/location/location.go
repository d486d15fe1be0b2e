package location

import (
	"context"
	"strings"

	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/upstream"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

// Service resolves home-location agency identifiers. Misses and provider
// failures resolve to "" so callers can skip optional enrichment.
type Service struct {
	provider upstream.LocationServices
	cache    cache.Memoizer
	logger   *logger.Logger
}

func NewService(provider upstream.LocationServices, memo cache.Memoizer, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, cache: memo, logger: log}
}

// ResolveAgencyIdentifier maps a location id such as "83.0001" to its agency code.
func (s *Service) ResolveAgencyIdentifier(ctx context.Context, locationID string) string {
	loc, ok := s.find(ctx, locationID)
	if !ok {
		return ""
	}
	return loc.AgencyCode
}

func (s *Service) ResolveName(ctx context.Context, locationID string) string {
	loc, ok := s.find(ctx, locationID)
	if !ok {
		return ""
	}
	return loc.Name
}

func (s *Service) ResolveRegion(ctx context.Context, agencyCode string) string {
	agencyCode = strings.TrimSpace(agencyCode)
	if agencyCode == "" {
		return ""
	}

	region, err := cache.Fetch(ctx, s.cache, cache.Key("LocationRegion", agencyCode), func(ctx context.Context) (string, error) {
		r, err := s.provider.Region(ctx, agencyCode)
		if err != nil {
			if upstream.IsNotFound(err) {
				return "", nil
			}
			return "", err
		}
		if r == nil {
			return "", nil
		}
		return r.RegionName, nil
	})
	if err != nil {
		s.logger.Warn("Region lookup failed", "agency_code", agencyCode, "error", err)
		return ""
	}
	return region
}

func (s *Service) find(ctx context.Context, locationID string) (upstream.Location, bool) {
	locationID = strings.TrimSpace(locationID)
	if locationID == "" {
		return upstream.Location{}, false
	}

	index, err := cache.Fetch(ctx, s.cache, cache.Key("Locations", "all"), func(ctx context.Context) (map[string]upstream.Location, error) {
		locations, err := s.provider.Locations(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]upstream.Location, len(locations))
		for _, loc := range locations {
			byID[loc.LocationID] = loc
		}
		return byID, nil
	})
	if err != nil {
		s.logger.Warn("Location lookup failed", "location_id", locationID, "error", err)
		return upstream.Location{}, false
	}

	loc, ok := index[locationID]
	return loc, ok
}

package files

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/lookup"
	"github.com/JustJay7/court-viewer/internal/upstream"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

// Every civil search is sent with the full permission list.
const searchFilePermissions = `["A","Y","T","F","C","M","L","R","B","D","E","G","H","N","O","P","S","V"]`

// courtClasses are the court class codes a file number prefix may carry, as in "P-241".
var courtClasses = map[string]bool{
	"A": true, "Y": true, "T": true, "F": true, "C": true, "M": true,
	"L": true, "R": true, "B": true, "D": true, "E": true, "G": true,
	"H": true, "N": true, "O": true, "P": true, "S": true, "V": true,
}

const maxFanOut = 8

// Describer resolves codes to descriptions. It never fails.
type Describer interface {
	Describe(ctx context.Context, category lookup.Category, code string) string
	DescribeShort(ctx context.Context, category lookup.Category, code string) string
	DocumentCategory(documentTypeCd string) string
}

// Locator resolves location ids. "" means unresolved.
type Locator interface {
	ResolveAgencyIdentifier(ctx context.Context, locationID string) string
	ResolveName(ctx context.Context, locationID string) string
	ResolveRegion(ctx context.Context, agencyCode string) string
}

type Options struct {
	ApplicationCd       string
	SearchApplicationCd string
	HearingRestrictions *HearingRestrictionPolicy
	Now                 func() time.Time
}

// Service aggregates the civil file provider into client-ready documents.
type Service struct {
	provider     upstream.FileServices
	cache        cache.Memoizer
	lookups      Describer
	locations    Locator
	logger       *logger.Logger
	appCd        string
	searchAppCd  string
	restrictions HearingRestrictionPolicy
	now          func() time.Time
}

func NewService(provider upstream.FileServices, memo cache.Memoizer, lookups Describer, locations Locator, log *logger.Logger, opts Options) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		provider:     provider,
		cache:        memo,
		lookups:      lookups,
		locations:    locations,
		logger:       log,
		appCd:        opts.ApplicationCd,
		searchAppCd:  opts.SearchApplicationCd,
		restrictions: DefaultHearingRestrictionPolicy(),
		now:          opts.Now,
	}
	if opts.HearingRestrictions != nil {
		s.restrictions = *opts.HearingRestrictions
	}
	if s.searchAppCd == "" {
		s.searchAppCd = s.appCd
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) caller(req Requester) upstream.Caller {
	return upstream.Caller{AgencyID: req.AgencyID, PartID: req.PartID, ApplicationCd: s.appCd}
}

// Search forwards a civil search to the provider with the permission list applied.
func (s *Service) Search(ctx context.Context, req Requester, query upstream.CivilSearchQuery) (*upstream.FileSearchResponse, error) {
	query.FilePermissions = searchFilePermissions
	caller := upstream.Caller{AgencyID: req.AgencyID, PartID: req.PartID, ApplicationCd: s.searchAppCd}

	resp, err := s.provider.SearchCivilFiles(ctx, caller, query)
	if err != nil {
		return nil, s.classify(ctx, "SearchCivilFiles", err)
	}
	return resp, nil
}

// FileIDsByAgencyAndFileNumber finds the files at a location carrying
// fileNumber. A court class prefix ("P-241") narrows the candidates by class.
// A single candidate comes back as a bare id without a detail fetch.
func (s *Service) FileIDsByAgencyAndFileNumber(ctx context.Context, req Requester, location, fileNumber string) ([]CivilFileDetail, error) {
	location = strings.TrimSpace(location)
	fileNumber = strings.TrimSpace(fileNumber)
	if location == "" || fileNumber == "" {
		return nil, fmt.Errorf("location and file number are required: %w", ErrInvalidInput)
	}

	courtClass, number := splitFileNumber(fileNumber)

	resp, err := s.Search(ctx, req, upstream.CivilSearchQuery{
		SearchMode:       upstream.SearchModeFileNo,
		FileHomeAgencyID: location,
		FileNumber:       number,
	})
	if err != nil {
		return nil, err
	}

	var ids []string
	if resp != nil {
		for _, fd := range resp.FileDetail {
			if courtClass != "" && fd.CourtClassCd != courtClass {
				continue
			}
			ids = append(ids, fd.PhysicalFileID)
		}
	}

	switch len(ids) {
	case 0:
		return []CivilFileDetail{}, nil
	case 1:
		return []CivilFileDetail{{PhysicalFileID: ids[0]}}, nil
	}

	details := make([]CivilFileDetail, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			detail, err := s.fileDetail(gctx, req, id)
			if err != nil {
				return err
			}
			if detail != nil {
				details[i] = mapFileDetail(detail)
				redactDocuments(details[i].Document)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// splitFileNumber separates an optional court class token from the number.
// An unrecognised token is dropped without filtering.
func splitFileNumber(fileNumber string) (courtClass, number string) {
	if !strings.Contains(fileNumber, "-") {
		return "", fileNumber
	}
	parts := strings.Split(fileNumber, "-")
	if courtClasses[parts[0]] {
		courtClass = parts[0]
	}
	return courtClass, parts[1]
}

// CourtSummaryReport returns the rendered report for an appearance.
func (s *Service) CourtSummaryReport(ctx context.Context, req Requester, appearanceID, reportName string) ([]byte, error) {
	if strings.TrimSpace(appearanceID) == "" {
		return nil, fmt.Errorf("appearance id is required: %w", ErrInvalidInput)
	}

	resp, err := s.provider.CivilCourtSummaryReport(ctx, s.caller(req), appearanceID, reportName)
	if err != nil {
		return nil, s.classify(ctx, "CivilCourtSummaryReport", err)
	}
	if resp == nil || len(resp.ReportContent) == 0 {
		return nil, fmt.Errorf("court summary report %s: %w", appearanceID, ErrNotFound)
	}
	return resp.ReportContent, nil
}

// FileContent passes a file content query through to the provider.
func (s *Service) FileContent(ctx context.Context, q FileContentRequest) (*upstream.CivilFileContent, error) {
	proceeding := ""
	if q.Proceeding != nil {
		proceeding = q.Proceeding.Format("2006-01-02")
	}

	resp, err := s.provider.CivilFileContent(ctx, upstream.FileContentQuery{
		AgencyID:       q.AgencyID,
		RoomCode:       q.RoomCode,
		Proceeding:     proceeding,
		AppearanceID:   q.AppearanceID,
		PhysicalFileID: q.PhysicalFileID,
		ApplicationCd:  s.appCd,
	})
	if err != nil {
		return nil, s.classify(ctx, "CivilFileContent", err)
	}
	return resp, nil
}

func (s *Service) fileDetail(ctx context.Context, req Requester, fileID string) (*upstream.CivilFileDetailResponse, error) {
	key := cache.Key("CivilFileDetail", fileID, req.PartID)
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*upstream.CivilFileDetailResponse, error) {
		resp, err := s.provider.CivilFileDetail(ctx, s.caller(req), fileID)
		if err != nil {
			return nil, s.classify(ctx, "CivilFileDetail", err)
		}
		return resp, nil
	})
}

func (s *Service) fileContent(ctx context.Context, req Requester, fileID string) (*upstream.CivilFileContent, error) {
	key := cache.Key("CivilFileContent", fileID, req.PartID)
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*upstream.CivilFileContent, error) {
		resp, err := s.provider.CivilFileContent(ctx, upstream.FileContentQuery{
			PhysicalFileID: fileID,
			ApplicationCd:  s.appCd,
		})
		if err != nil {
			return nil, s.classify(ctx, "CivilFileContent", err)
		}
		return resp, nil
	})
}

// appearances caches the provider collection and enriches a fresh copy per
// call, so a description that was blank once is looked up again next time.
func (s *Service) appearances(ctx context.Context, req Requester, fileID string) (*Appearances, error) {
	key := cache.Key("CivilAppearances", fileID, req.PartID)
	resp, err := cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*upstream.CivilFileAppearancesResponse, error) {
		resp, err := s.provider.CivilAppearances(ctx, s.caller(req), true, true, fileID)
		if err != nil {
			return nil, s.classify(ctx, "CivilAppearances", err)
		}
		return resp, nil
	})
	if err != nil || resp == nil {
		return nil, err
	}
	return s.enrichAppearances(ctx, resp), nil
}

func (s *Service) appearanceParties(ctx context.Context, req Requester, fileID, appearanceID string) (*upstream.CivilAppearancePartyResponse, error) {
	key := cache.Key("CivilAppearanceParty", fileID, appearanceID, req.PartID)
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*upstream.CivilAppearancePartyResponse, error) {
		resp, err := s.provider.CivilAppearanceParties(ctx, s.caller(req), appearanceID)
		if err != nil {
			return nil, s.classify(ctx, "CivilAppearanceParties", err)
		}
		return resp, nil
	})
}

func (s *Service) appearanceMethods(ctx context.Context, req Requester, fileID, appearanceID string) (*upstream.CivilAppearanceMethodResponse, error) {
	key := cache.Key("CivilAppearanceMethods", fileID, appearanceID, req.PartID)
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*upstream.CivilAppearanceMethodResponse, error) {
		resp, err := s.provider.CivilAppearanceMethods(ctx, s.caller(req), appearanceID)
		if err != nil {
			return nil, s.classify(ctx, "CivilAppearanceMethods", err)
		}
		return resp, nil
	})
}

func (s *Service) courtList(ctx context.Context, req Requester, q upstream.CourtListQuery) (*upstream.CourtList, error) {
	key := cache.Key("CivilCourtList", q.AgencyID, q.RoomCode, q.Proceeding, q.FileNumber, req.PartID)
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*upstream.CourtList, error) {
		resp, err := s.provider.CourtList(ctx, q)
		if err != nil {
			return nil, s.classify(ctx, "CourtList", err)
		}
		return resp, nil
	})
}

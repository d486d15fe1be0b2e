package lookup

import (
	"context"
	"strings"

	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/upstream"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

// Category names a provider code table.
type Category string

const (
	AppearanceReason      Category = "CivilAppearanceReasons"
	AppearanceResult      Category = "CivilAppearanceResults"
	AppearanceStatus      Category = "CivilAppearanceStatus"
	DocumentType          Category = "DocumentTypes"
	RoleType              Category = "CivilRoleTypes"
	HearingRestriction    Category = "HearingRestrictionTypes"
	IssueType             Category = "CivilDocumentIssueTypes"
	IssueResult           Category = "CivilDocumentIssueResults"
	Assets                Category = "CivilAssets"
	PartyAttendanceType   Category = "CivilPartyAttendanceTypes"
	CounselAttendanceType Category = "CivilCounselAttendanceTypes"
	CourtClass            Category = "CourtClasses"
	CourtLevel            Category = "CourtLevels"
	ActivityClass         Category = "ActivityClasses"
)

// Recorder is told about codes that could not be described.
type Recorder interface {
	LookupDegraded(category string)
}

// Service turns opaque codes into descriptions. It never fails its caller:
// unknown codes and provider failures both resolve to "".
type Service struct {
	provider   upstream.LookupServices
	cache      cache.Memoizer
	logger     *logger.Logger
	recorder   Recorder
	categories DocumentCategories
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithDocumentCategories(c DocumentCategories) Option {
	return func(s *Service) { s.categories = c }
}

func NewService(provider upstream.LookupServices, memo cache.Memoizer, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		provider:   provider,
		cache:      memo,
		logger:     log,
		categories: DefaultDocumentCategories(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Describe returns the long description for code, falling back to the short one.
func (s *Service) Describe(ctx context.Context, category Category, code string) string {
	return s.describe(ctx, category, code, "long", func(c upstream.LookupCode) string {
		if c.LongDesc != "" {
			return c.LongDesc
		}
		return c.ShortDesc
	})
}

// DescribeShort returns the short description for code.
func (s *Service) DescribeShort(ctx context.Context, category Category, code string) string {
	return s.describe(ctx, category, code, "short", func(c upstream.LookupCode) string {
		return c.ShortDesc
	})
}

// DocumentCategory classifies a document type code. It does not consult the provider.
func (s *Service) DocumentCategory(documentTypeCd string) string {
	return s.categories.Classify(documentTypeCd)
}

func (s *Service) describe(ctx context.Context, category Category, code, form string, pick func(upstream.LookupCode) string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	key := cache.Key("Lookup", string(category), form, code)
	desc, err := cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (string, error) {
		table, err := s.table(ctx, category)
		if err != nil {
			return "", err
		}
		for _, row := range table {
			if row.Code == code {
				return pick(row), nil
			}
		}
		return "", nil
	})
	if err != nil {
		s.logger.Warn("Lookup failed, leaving description blank", "category", category, "code", code, "error", err)
		s.degraded(category)
		return ""
	}
	if desc == "" {
		s.degraded(category)
	}
	return desc
}

func (s *Service) table(ctx context.Context, category Category) ([]upstream.LookupCode, error) {
	return cache.Fetch(ctx, s.cache, cache.Key("LookupTable", string(category)), func(ctx context.Context) ([]upstream.LookupCode, error) {
		return s.provider.Codes(ctx, string(category))
	})
}

func (s *Service) degraded(category Category) {
	if s.recorder != nil {
		s.recorder.LookupDegraded(string(category))
	}
}

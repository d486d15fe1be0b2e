package files

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/lookup"
	"github.com/JustJay7/court-viewer/internal/upstream"
)

func TestFileDetail(t *testing.T) {
	provider := scenarioProvider()
	svc := newTestService(t, provider)

	detail, err := svc.FileDetail(context.Background(), testRequester, "40")
	require.NoError(t, err)

	assert.Equal(t, "40", detail.PhysicalFileID)
	assert.Equal(t, "P-241", detail.FileNumberTxt)

	var lastNames []string
	for _, p := range detail.Party {
		lastNames = append(lastNames, p.LastNm)
	}
	assert.Contains(t, lastNames, "Kings")
	assert.Contains(t, lastNames, "Jones")
	assert.Equal(t, "Applicant", detail.Party[0].RoleTypeDescription)
	assert.Equal(t, "Respondent", detail.Party[1].RoleTypeDescription)

	t.Run("base enrichment", func(t *testing.T) {
		assert.Equal(t, "4801", detail.HomeLocationAgencyCode)
		assert.Equal(t, "Robson Square", detail.HomeLocationAgencyName)
		assert.Equal(t, "Vancouver Region", detail.HomeLocationRegionName)
		assert.Equal(t, "Family", detail.CourtClassDescription)
		assert.Equal(t, "Provincial", detail.CourtLevelDescription)
		assert.Equal(t, "Family Law Act", detail.ActivityClassCd)
		assert.Equal(t, "Family", detail.ActivityClassDesc)
		assert.Equal(t, "Custody matter", detail.FileCommentText)
	})

	t.Run("documents", func(t *testing.T) {
		require.Len(t, detail.Document, 4)

		affidavit := detail.Document[0]
		assert.Equal(t, "AFFIDAVITS", affidavit.Category)
		assert.Equal(t, "Affidavit", affidavit.DocumentTypeDescription)
		assert.Equal(t, "img-100", affidavit.ImageID)
		assert.Equal(t, "2024-09-01 09:30:00.0", affidavit.NextAppearanceDt)
		assert.Nil(t, affidavit.Appearance)
		require.Len(t, affidavit.FiledBy, 1)
		assert.Equal(t, "Kings, Stephen", affidavit.FiledBy[0].FiledByName)
		assert.Equal(t, "Divorce", affidavit.Issue[0].IssueTypeDesc)

		sealed := detail.Document[1]
		assert.Equal(t, "ORDERS", sealed.Category)
		assert.Empty(t, sealed.ImageID)
		assert.Empty(t, sealed.NextAppearanceDt)
	})

	t.Run("court summary reports", func(t *testing.T) {
		csr := detail.Document[2]
		assert.Equal(t, CategoryCSR, csr.Category)
		assert.Equal(t, "CSR", csr.DocumentTypeCd)
		assert.Equal(t, "Court Summary", csr.DocumentTypeDescription)
		assert.Equal(t, "9001", csr.CivilDocumentID)
		assert.Equal(t, "9001", csr.ImageID)
		assert.Equal(t, "2024-06-01", csr.FiledDt)
		assert.Equal(t, "2024-06-01", csr.LastAppearanceDt)
		assert.Equal(t, "9002", detail.Document[3].ImageID)
	})

	t.Run("hearing restrictions", func(t *testing.T) {
		require.Len(t, detail.HearingRestriction, 1)
		assert.Equal(t, "S", detail.HearingRestriction[0].HearingRestrictionTypeCd)
		assert.Equal(t, "Seized", detail.HearingRestriction[0].HearingRestrictionTypeDsc)
	})

	t.Run("appearances", func(t *testing.T) {
		require.NotNil(t, detail.Appearances)
		require.Len(t, detail.Appearances.ApprDetail, 1)
		appr := detail.Appearances.ApprDetail[0]
		assert.Equal(t, "Trial", appr.AppearanceReasonDsc)
		assert.Equal(t, "Scheduled", appr.AppearanceStatusDsc)
		assert.Equal(t, "4801", appr.CourtLocationID)
		assert.Equal(t, "Robson Square", appr.CourtLocation)
	})

	// cached provider records are never mutated by enrichment
	assert.Equal(t, "img-101", provider.details["40"].Document[1].ImageID)
	assert.Len(t, provider.details["40"].Document[0].Appearance, 3)
}

func TestFileDetailHearingRestrictionPolicy(t *testing.T) {
	provider := scenarioProvider()
	svc := newTestService(t, provider)
	svc.restrictions = HearingRestrictionPolicy{AllowedTypes: []string{"S", "D"}}

	detail, err := svc.FileDetail(context.Background(), testRequester, "40")
	require.NoError(t, err)
	assert.Len(t, detail.HearingRestriction, 2)

	assert.True(t, DefaultHearingRestrictionPolicy().Allows("S"))
	assert.False(t, DefaultHearingRestrictionPolicy().Allows("D"))
	assert.False(t, HearingRestrictionPolicy{}.Allows("S"))
}

func TestFileDetailNotFound(t *testing.T) {
	t.Run("empty record", func(t *testing.T) {
		svc := newTestService(t, scenarioProvider())
		_, err := svc.FileDetail(context.Background(), testRequester, "77")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.True(t, IsNotFound(err))
	})

	t.Run("provider 404", func(t *testing.T) {
		provider := scenarioProvider()
		provider.fail("CivilFileDetail", &upstream.StatusError{Operation: "CivilFileDetail", StatusCode: 404})
		svc := newTestService(t, provider)

		_, err := svc.FileDetail(context.Background(), testRequester, "40")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrUpstream)
	})

	t.Run("blank id", func(t *testing.T) {
		svc := newTestService(t, scenarioProvider())
		_, err := svc.FileDetail(context.Background(), testRequester, " ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestFileDetailUpstreamFailureIsNotCached(t *testing.T) {
	provider := scenarioProvider()
	boom := errors.New("connection reset")
	provider.fail("CivilFileContent", boom)
	svc := newTestService(t, provider)

	_, err := svc.FileDetail(context.Background(), testRequester, "40")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, boom)

	provider.fail("CivilFileContent", nil)
	detail, err := svc.FileDetail(context.Background(), testRequester, "40")
	require.NoError(t, err)
	assert.Equal(t, "Custody matter", detail.FileCommentText)
	assert.Equal(t, 2, provider.count("CivilFileContent"))
}

func TestFileDetailSharesUpstreamCalls(t *testing.T) {
	provider := scenarioProvider()
	provider.detailGate = make(chan struct{})
	svc := newTestService(t, provider)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.FileDetail(context.Background(), testRequester, "40")
			errs <- err
		}()
	}
	close(provider.detailGate)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, provider.count("CivilFileDetail"))
	assert.Equal(t, 1, provider.count("CivilFileContent"))
	assert.Equal(t, 1, provider.count("CivilAppearances"))
}

func TestAppearanceDescriptionsAreNotCachedBlank(t *testing.T) {
	provider := scenarioProvider()
	lookups := newFakeLookups()
	delete(lookups.long, lookup.AppearanceReason)
	svc := NewService(provider, cache.NewStore(1000, time.Minute), lookups, newFakeLocations(), nil, Options{
		Now: func() time.Time { return testNow },
	})

	detail, err := svc.FileDetail(context.Background(), testRequester, "40")
	require.NoError(t, err)
	require.Len(t, detail.Appearances.ApprDetail, 1)
	assert.Empty(t, detail.Appearances.ApprDetail[0].AppearanceReasonDsc)

	lookups.long[lookup.AppearanceReason] = map[string]string{"TRL": "Trial"}
	detail, err = svc.FileDetail(context.Background(), testRequester, "40")
	require.NoError(t, err)
	assert.Equal(t, "Trial", detail.Appearances.ApprDetail[0].AppearanceReasonDsc)
	assert.Equal(t, 1, provider.count("CivilAppearances"))
}

func TestFileDetailCacheIsScopedToRequester(t *testing.T) {
	provider := scenarioProvider()
	svc := newTestService(t, provider)

	_, err := svc.FileDetail(context.Background(), Requester{PartID: "1"}, "40")
	require.NoError(t, err)
	_, err = svc.FileDetail(context.Background(), Requester{PartID: "2"}, "40")
	require.NoError(t, err)
	_, err = svc.FileDetail(context.Background(), Requester{PartID: "1"}, "40")
	require.NoError(t, err)

	assert.Equal(t, 2, provider.count("CivilFileDetail"))
}

func TestNextAppearanceDate(t *testing.T) {
	svc := newTestService(t, scenarioProvider())

	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{"first future in order, not earliest", []string{"2024-06-01", "2024-09-01", "2024-07-01"}, "2024-09-01"},
		{"today counts", []string{"2024-06-14", "2024-06-15 00:00:00.0"}, "2024-06-15 00:00:00.0"},
		{"unparseable skipped", []string{"soon", "", "2024-12-24T10:00:00"}, "2024-12-24T10:00:00"},
		{"none in future", []string{"2023-01-01", "2024-06-14 23:59:59"}, ""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appearances []upstream.DocumentAppearance
			for i, d := range tt.dates {
				appearances = append(appearances, upstream.DocumentAppearance{AppearanceID: string(rune('a' + i)), AppearanceDate: d})
			}
			assert.Equal(t, tt.want, svc.nextAppearanceDate(appearances))
		})
	}
}

func TestEnrichDocumentIsIdempotent(t *testing.T) {
	svc := newTestService(t, scenarioProvider())
	civilFile := &upstream.ContentCivilFile{
		PhysicalFileID: "40",
		Document: []upstream.ContentDocument{
			{DocumentID: "100", FiledBy: []upstream.FiledBy{{FiledByName: "Kings, Stephen"}}},
		},
	}

	for _, sealed := range []string{"N", "Y", ""} {
		t.Run("sealed="+sealed, func(t *testing.T) {
			doc := mapDocument(upstream.CivilDocument{
				CivilDocumentID: "100",
				DocumentTypeCd:  "AFF",
				SealedYN:        sealed,
				ImageID:         "img-100",
				Issue:           []upstream.CivilIssue{{IssueTypeCd: "DIV"}},
				Appearance:      []upstream.DocumentAppearance{{AppearanceID: "1", AppearanceDate: "2024-07-01"}},
			})

			svc.enrichDocument(context.Background(), &doc, civilFile)
			once := doc
			once.Issue = append([]Issue(nil), doc.Issue...)

			svc.enrichDocument(context.Background(), &doc, civilFile)
			assert.Equal(t, once, doc)
			assert.Equal(t, "2024-07-01", doc.NextAppearanceDt)
			if sealed == "N" {
				assert.Equal(t, "img-100", doc.ImageID)
			} else {
				assert.Empty(t, doc.ImageID)
			}
		})
	}
}

package files

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JustJay7/court-viewer/internal/lookup"
	"github.com/JustJay7/court-viewer/internal/upstream"
)

const (
	CategoryCSR         = "CSR"
	csrDocumentTypeCd   = "CSR"
	csrDocumentTypeDesc = "Court Summary"
	sealedNo            = "N"
)

// FileDetail fetches file detail, file content and appearances in parallel
// and joins them into one enriched file.
func (s *Service) FileDetail(ctx context.Context, req Requester, fileID string) (*CivilFileDetail, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return nil, fmt.Errorf("file id is required: %w", ErrInvalidInput)
	}

	var (
		detail      *upstream.CivilFileDetailResponse
		content     *upstream.CivilFileContent
		appearances *Appearances
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail, err = s.fileDetail(gctx, req, fileID)
		return err
	})
	g.Go(func() (err error) {
		content, err = s.fileContent(gctx, req, fileID)
		return err
	})
	g.Go(func() (err error) {
		appearances, err = s.appearances(gctx, req, fileID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if detail == nil || detail.PhysicalFileID == "" {
		return nil, fmt.Errorf("file %s: %w", fileID, ErrNotFound)
	}

	out := mapFileDetail(detail)
	out.Document = append(out.Document, csrDocuments(detail.Appearance)...)

	s.enrichBase(ctx, &out)
	out.Appearances = appearances

	civilFile := findCivilFile(content, fileID)
	if civilFile != nil {
		out.FileCommentText = civilFile.FileCommentText
	}

	s.enrichParties(ctx, out.Party)
	s.enrichDocuments(ctx, out.Document, civilFile)
	out.HearingRestriction = s.hearingRestrictions(ctx, detail.HearingRestriction)

	return &out, nil
}

// mapFileDetail copies the provider record so enrichment never touches cached data.
func mapFileDetail(src *upstream.CivilFileDetailResponse) CivilFileDetail {
	out := CivilFileDetail{
		PhysicalFileID:     src.PhysicalFileID,
		FileNumberTxt:      src.FileNumberTxt,
		FilePrefixTxt:      src.FilePrefixTxt,
		CourtClassCd:       src.CourtClassCd,
		CourtLevelCd:       src.CourtLevelCd,
		HomeLocationAgenID: src.HomeLocationAgenID,
		SealStatusCd:       src.SealStatusCd,
		LeftRoleDsc:        src.LeftRoleDsc,
		RightRoleDsc:       src.RightRoleDsc,
		SocTxt:             src.SocTxt,
		Party:              make([]Party, 0, len(src.Party)),
		Document:           make([]Document, 0, len(src.Document)+len(src.Appearance)),
		ReferenceDocument:  append([]upstream.CivilReferenceDocument(nil), src.ReferenceDocument...),
		HearingRestriction: []HearingRestriction{},
	}
	for _, p := range src.Party {
		out.Party = append(out.Party, Party{
			PartyID:     p.PartyID,
			RoleTypeCd:  p.RoleTypeCd,
			LeftRightCd: p.LeftRightCd,
			LastNm:      p.LastNm,
			GivenNm:     p.GivenNm,
			OrgNm:       p.OrgNm,
			Counsel:     p.Counsel,
		})
	}
	for _, d := range src.Document {
		out.Document = append(out.Document, mapDocument(d))
	}
	return out
}

func mapDocument(d upstream.CivilDocument) Document {
	doc := Document{
		CivilDocumentID:         d.CivilDocumentID,
		FileSeqNo:               d.FileSeqNo,
		DocumentTypeCd:          d.DocumentTypeCd,
		DocumentTypeDescription: d.DocumentTypeDescription,
		FiledDt:                 d.FiledDt,
		LastAppearanceDt:        d.LastAppearanceDt,
		CommentTxt:              d.CommentTxt,
		ConcludedYN:             d.ConcludedYN,
		SealedYN:                d.SealedYN,
		ImageID:                 d.ImageID,
		Issue:                   make([]Issue, 0, len(d.Issue)),
		Appearance:              append([]upstream.DocumentAppearance(nil), d.Appearance...),
	}
	for _, issue := range d.Issue {
		doc.Issue = append(doc.Issue, Issue{
			IssueNumber:   issue.IssueNumber,
			IssueTypeCd:   issue.IssueTypeCd,
			IssueDsc:      issue.IssueDsc,
			IssueResultCd: issue.IssueResultCd,
			ConcludedYN:   issue.ConcludedYN,
		})
	}
	return doc
}

// csrDocuments synthesizes one court summary report per appearance.
func csrDocuments(appearances []upstream.FileAppearance) []Document {
	docs := make([]Document, 0, len(appearances))
	for _, a := range appearances {
		docs = append(docs, Document{
			CivilDocumentID:         a.AppearanceID,
			ImageID:                 a.AppearanceID,
			DocumentTypeCd:          csrDocumentTypeCd,
			DocumentTypeDescription: csrDocumentTypeDesc,
			Category:                CategoryCSR,
			FiledDt:                 a.AppearanceDate,
			LastAppearanceDt:        a.AppearanceDate,
			Issue:                   []Issue{},
		})
	}
	return docs
}

func (s *Service) enrichBase(ctx context.Context, detail *CivilFileDetail) {
	detail.HomeLocationAgencyCode = s.locations.ResolveAgencyIdentifier(ctx, detail.HomeLocationAgenID)
	detail.HomeLocationAgencyName = s.locations.ResolveName(ctx, detail.HomeLocationAgenID)
	detail.HomeLocationRegionName = s.locations.ResolveRegion(ctx, detail.HomeLocationAgencyCode)
	detail.CourtClassDescription = s.lookups.Describe(ctx, lookup.CourtClass, detail.CourtClassCd)
	detail.CourtLevelDescription = s.lookups.Describe(ctx, lookup.CourtLevel, detail.CourtLevelCd)
	detail.ActivityClassCd = s.lookups.Describe(ctx, lookup.ActivityClass, detail.CourtClassCd)
	detail.ActivityClassDesc = s.lookups.DescribeShort(ctx, lookup.ActivityClass, detail.CourtClassCd)
}

func (s *Service) enrichAppearances(ctx context.Context, resp *upstream.CivilFileAppearancesResponse) *Appearances {
	out := &Appearances{
		FutureRecCount:  resp.FutureRecCount,
		HistoryRecCount: resp.HistoryRecCount,
		ApprDetail:      make([]Appearance, 0, len(resp.ApprDetail)),
	}
	for _, entry := range resp.ApprDetail {
		out.ApprDetail = append(out.ApprDetail, Appearance{
			AppearanceEntry:     entry,
			AppearanceReasonDsc: s.lookups.Describe(ctx, lookup.AppearanceReason, entry.AppearanceReasonCd),
			AppearanceResultDsc: s.lookups.Describe(ctx, lookup.AppearanceResult, entry.AppearanceResultCd),
			AppearanceStatusDsc: s.lookups.Describe(ctx, lookup.AppearanceStatus, entry.AppearanceStatusCd),
			CourtLocationID:     s.locations.ResolveAgencyIdentifier(ctx, entry.CourtAgencyID),
			CourtLocation:       s.locations.ResolveName(ctx, entry.CourtAgencyID),
			DocumentTypeDsc:     s.lookups.Describe(ctx, lookup.DocumentType, entry.DocumentTypeCd),
		})
	}
	return out
}

func (s *Service) enrichParties(ctx context.Context, parties []Party) {
	for i := range parties {
		parties[i].RoleTypeDescription = s.lookups.Describe(ctx, lookup.RoleType, parties[i].RoleTypeCd)
	}
}

func (s *Service) enrichDocuments(ctx context.Context, docs []Document, civilFile *upstream.ContentCivilFile) {
	for i := range docs {
		if docs[i].Category == CategoryCSR {
			continue
		}
		s.enrichDocument(ctx, &docs[i], civilFile)
	}
}

// enrichDocument is safe to apply more than once.
func (s *Service) enrichDocument(ctx context.Context, doc *Document, civilFile *upstream.ContentCivilFile) {
	doc.FiledBy = nil
	if civilFile != nil {
		for _, c := range civilFile.Document {
			if c.DocumentID == doc.CivilDocumentID {
				doc.FiledBy = c.FiledBy
				break
			}
		}
	}
	doc.Category = s.lookups.DocumentCategory(doc.DocumentTypeCd)
	doc.DocumentTypeDescription = s.lookups.Describe(ctx, lookup.DocumentType, doc.DocumentTypeCd)
	redactSealed(doc)

	if len(doc.Appearance) > 0 {
		doc.NextAppearanceDt = s.nextAppearanceDate(doc.Appearance)
		doc.Appearance = nil
	}

	for j := range doc.Issue {
		doc.Issue[j].IssueTypeDesc = s.lookups.Describe(ctx, lookup.IssueType, doc.Issue[j].IssueTypeCd)
	}
}

// redactDocuments applies the response redactions to documents that skip
// enrichment.
func redactDocuments(docs []Document) {
	for i := range docs {
		redactSealed(&docs[i])
		docs[i].Appearance = nil
	}
}

// redactSealed drops the image of any document not explicitly unsealed.
func redactSealed(doc *Document) {
	if doc.SealedYN != sealedNo {
		doc.ImageID = ""
	}
}

// nextAppearanceDate returns the first appearance, in the order given, whose
// date parses and is not before today.
func (s *Service) nextAppearanceDate(appearances []upstream.DocumentAppearance) string {
	now := s.now()
	today := startOfDay(now)
	for _, a := range appearances {
		date, ok := parseAppearanceDate(a.AppearanceDate, now.Location())
		if ok && !date.Before(today) {
			return a.AppearanceDate
		}
	}
	return ""
}

func (s *Service) hearingRestrictions(ctx context.Context, restrictions []upstream.HearingRestriction) []HearingRestriction {
	out := make([]HearingRestriction, 0, len(restrictions))
	for _, hr := range restrictions {
		if !s.restrictions.Allows(hr.HearingRestrictionTypeCd) {
			continue
		}
		out = append(out, HearingRestriction{
			HearingRestriction:        hr,
			HearingRestrictionTypeDsc: s.lookups.Describe(ctx, lookup.HearingRestriction, hr.HearingRestrictionTypeCd),
		})
	}
	return out
}

func findCivilFile(content *upstream.CivilFileContent, fileID string) *upstream.ContentCivilFile {
	if content == nil {
		return nil
	}
	for i := range content.CivilFile {
		if content.CivilFile[i].PhysicalFileID == fileID {
			return &content.CivilFile[i]
		}
	}
	return nil
}

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
	adjudicatorRoleCd = "ADJ"
	civilDivisionCd   = "CV"
)

// AppearanceDetail joins the parties, methods, documents and adjudicator of
// one appearance. The court list is consulted only when the file's home
// location resolves to an agency.
func (s *Service) AppearanceDetail(ctx context.Context, req Requester, fileID, appearanceID string) (*AppearanceDetail, error) {
	fileID = strings.TrimSpace(fileID)
	appearanceID = strings.TrimSpace(appearanceID)
	if fileID == "" || appearanceID == "" {
		return nil, fmt.Errorf("file id and appearance id are required: %w", ErrInvalidInput)
	}

	var (
		detail      *upstream.CivilFileDetailResponse
		parties     *upstream.CivilAppearancePartyResponse
		methods     *upstream.CivilAppearanceMethodResponse
		content     *upstream.CivilFileContent
		appearances *Appearances
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail, err = s.fileDetail(gctx, req, fileID)
		return err
	})
	g.Go(func() (err error) {
		parties, err = s.appearanceParties(gctx, req, fileID, appearanceID)
		return err
	})
	g.Go(func() (err error) {
		methods, err = s.appearanceMethods(gctx, req, fileID, appearanceID)
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

	target := findAppearance(appearances, appearanceID)
	if detail == nil || detail.PhysicalFileID == "" || target == nil {
		return nil, fmt.Errorf("appearance %s on file %s: %w", appearanceID, fileID, ErrNotFound)
	}

	agencyID := s.locations.ResolveAgencyIdentifier(ctx, detail.HomeLocationAgenID)

	var courtListParties []upstream.CLParty
	if agencyID != "" {
		var err error
		courtListParties, err = s.courtListParties(ctx, req, upstream.CourtListQuery{
			AgencyID:   agencyID,
			RoomCode:   target.CourtRoomCd,
			Proceeding: target.AppearanceDt,
			DivisionCd: civilDivisionCd,
			FileNumber: detail.FileNumberTxt,
		}, appearanceID)
		if err != nil {
			return nil, err
		}
	}

	var methodRows []upstream.AppearanceMethod
	if methods != nil {
		methodRows = methods.AppearanceMethod
	}
	var partyRows []upstream.AppearanceParty
	if parties != nil {
		partyRows = parties.Party
	}
	previous := findPreviousAppearance(findCivilFile(content, fileID), appearanceID)

	out := &AppearanceDetail{
		PhysicalFileID:       fileID,
		AgencyID:             agencyID,
		AppearanceID:         appearanceID,
		AppearanceDt:         target.AppearanceDt,
		AppearanceReasonCd:   target.AppearanceReasonCd,
		AppearanceReasonDesc: target.AppearanceReasonDsc,
		AppearanceResultCd:   target.AppearanceResultCd,
		AppearanceResultDesc: target.AppearanceResultDsc,
		CourtRoomCd:          target.CourtRoomCd,
		FileNumberTxt:        detail.FileNumberTxt,
		AppearanceMethod:     s.appearanceMethodViews(ctx, methodRows),
		Party:                s.joinParties(ctx, partyRows, courtListParties, previous, methodRows),
		Document:             s.appearanceDocuments(ctx, detail.Document, appearanceID),
		Adjudicator:          s.adjudicator(ctx, previous, methodRows),
	}
	if previous != nil {
		out.AdjudicatorComment = previous.AdjudicatorComment
	}
	return out, nil
}

// courtListParties returns the court list parties for the appearance. A
// missing court list or appearance only costs the attendance enrichment;
// any other provider failure fails the appearance detail.
func (s *Service) courtListParties(ctx context.Context, req Requester, q upstream.CourtListQuery, appearanceID string) ([]upstream.CLParty, error) {
	list, err := s.courtList(ctx, req, q)
	if err != nil {
		if IsNotFound(err) {
			s.logger.Debug("No court list, skipping attendance enrichment",
				"agency_id", q.AgencyID, "room", q.RoomCode, "appearance_id", appearanceID)
			return nil, nil
		}
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	for _, entry := range list.CivilCourtList {
		if entry.AppearanceID == appearanceID {
			return entry.Parties, nil
		}
	}
	return nil, nil
}

func (s *Service) appearanceMethodViews(ctx context.Context, rows []upstream.AppearanceMethod) []AppearanceMethod {
	out := make([]AppearanceMethod, 0, len(rows))
	for _, row := range rows {
		out = append(out, AppearanceMethod{
			RoleTypeCd:           row.RoleTypeCd,
			RoleTypeDesc:         s.lookups.Describe(ctx, lookup.RoleType, row.RoleTypeCd),
			AppearanceMethodCd:   row.AppearanceMethodCd,
			AppearanceMethodDesc: s.lookups.Describe(ctx, lookup.Assets, row.AppearanceMethodCd),
			InstructionTxt:       row.InstructionTxt,
		})
	}
	return out
}

// joinParties merges one view per party id, in first-seen order.
func (s *Service) joinParties(ctx context.Context, rows []upstream.AppearanceParty, courtList []upstream.CLParty,
	previous *upstream.PreviousAppearance, methods []upstream.AppearanceMethod) []AppearanceParty {
	var order []string
	groups := make(map[string][]upstream.AppearanceParty)
	for _, row := range rows {
		if _, seen := groups[row.PartyID]; !seen {
			order = append(order, row.PartyID)
		}
		groups[row.PartyID] = append(groups[row.PartyID], row)
	}

	out := make([]AppearanceParty, 0, len(order))
	for _, partyID := range order {
		group := groups[partyID]
		first := group[0]
		party := AppearanceParty{
			PartyID:     first.PartyID,
			LastNm:      first.LastNm,
			GivenNm:     first.GivenNm,
			OrgNm:       first.OrgNm,
			LeftRightCd: first.LeftRightCd,
			PartyRole:   make([]PartyRole, 0, len(group)),
		}
		for _, row := range group {
			party.PartyRole = append(party.PartyRole, PartyRole{
				RoleTypeCd:  row.PartyRoleTypeCd,
				RoleTypeDsc: s.lookups.Describe(ctx, lookup.RoleType, row.PartyRoleTypeCd),
			})
		}

		if method := firstMatchingMethod(methods, party.PartyRole); method != nil {
			party.AppearanceMethodCd = method.AppearanceMethodCd
			party.AppearanceMethodDesc = s.lookups.Describe(ctx, lookup.Assets, method.AppearanceMethodCd)
		}

		if clp := findCourtListParty(courtList, partyID); clp != nil {
			s.applyCourtList(ctx, &party, clp)
		}

		if previous != nil {
			if participant := findParticipant(previous.CourtParticipant, partyID); participant != nil {
				s.applyPreviousAppearance(ctx, &party, participant)
			}
		}

		out = append(out, party)
	}
	return out
}

// firstMatchingMethod returns the first row, in collection order, whose role
// type is one of the party's roles.
func firstMatchingMethod(methods []upstream.AppearanceMethod, roles []PartyRole) *upstream.AppearanceMethod {
	for i := range methods {
		for _, role := range roles {
			if methods[i].RoleTypeCd == role.RoleTypeCd {
				return &methods[i]
			}
		}
	}
	return nil
}

func (s *Service) applyCourtList(ctx context.Context, party *AppearanceParty, clp *upstream.CLParty) {
	party.AttendanceMethodCd = clp.AttendanceMethodCd
	party.AttendanceMethodDesc = s.lookups.Describe(ctx, lookup.Assets, clp.AttendanceMethodCd)

	party.Counsel = make([]Counsel, 0, len(clp.Counsel))
	for _, c := range clp.Counsel {
		party.Counsel = append(party.Counsel, Counsel{
			CounselID:       c.CounselID,
			CounselFullName: c.CounselFullName,
			PhoneNumber:     c.PhoneNumber,
		})
	}

	party.Representative = make([]Representative, 0, len(clp.Representative))
	for _, r := range clp.Representative {
		party.Representative = append(party.Representative, Representative{
			RepFullName:          r.RepFullName,
			AttendanceMethodCd:   r.AttendanceMethodCd,
			AttendanceMethodDesc: s.lookups.Describe(ctx, lookup.Assets, r.AttendanceMethodCd),
		})
	}

	party.LegalRepresentative = clp.LegalRepresentative
}

// applyPreviousAppearance copies how the party appeared last time. Counsel
// rows in file content have no id, so they are matched by display name and
// the first counsel with that name wins.
func (s *Service) applyPreviousAppearance(ctx context.Context, party *AppearanceParty, participant *upstream.CourtParticipant) {
	party.PartyAppearanceMethod = participant.PartyAppearanceMethod
	party.PartyAppearanceMethodDesc = s.lookups.Describe(ctx, lookup.PartyAttendanceType, participant.PartyAppearanceMethod)

	for _, pc := range participant.Counsel {
		if pc.CounselName == "" {
			continue
		}
		for i := range party.Counsel {
			if party.Counsel[i].CounselFullName != pc.CounselName {
				continue
			}
			party.Counsel[i].CounselAppearanceMethod = pc.CounselAppearanceMethod
			party.Counsel[i].CounselAppearanceMethodDesc = s.lookups.Describe(ctx, lookup.CounselAttendanceType, pc.CounselAppearanceMethod)
			break
		}
	}
}

func (s *Service) appearanceDocuments(ctx context.Context, docs []upstream.CivilDocument, appearanceID string) []Document {
	out := []Document{}
	for _, d := range docs {
		if !attachedTo(d, appearanceID) {
			continue
		}
		doc := mapDocument(d)
		doc.Appearance = nil
		doc.Category = s.lookups.DocumentCategory(doc.DocumentTypeCd)
		doc.DocumentTypeDescription = s.lookups.Describe(ctx, lookup.DocumentType, doc.DocumentTypeCd)
		redactSealed(&doc)
		for j := range doc.Issue {
			doc.Issue[j].IssueTypeDesc = s.lookups.Describe(ctx, lookup.IssueType, doc.Issue[j].IssueTypeCd)
			doc.Issue[j].IssueResultCdDesc = s.lookups.Describe(ctx, lookup.IssueResult, doc.Issue[j].IssueResultCd)
		}
		out = append(out, doc)
	}
	return out
}

func (s *Service) adjudicator(ctx context.Context, previous *upstream.PreviousAppearance, methods []upstream.AppearanceMethod) *Adjudicator {
	if previous == nil {
		return nil
	}

	adj := &Adjudicator{
		FullName:                        previous.AdjudicatorName,
		AdjudicatorAppearanceMethod:     previous.AdjudicatorAppearanceMethod,
		AdjudicatorAppearanceMethodDesc: s.lookups.Describe(ctx, lookup.Assets, previous.AdjudicatorAppearanceMethod),
	}
	for _, m := range methods {
		if m.RoleTypeCd == adjudicatorRoleCd {
			adj.AppearanceMethodCd = m.AppearanceMethodCd
			adj.AppearanceMethodDesc = s.lookups.Describe(ctx, lookup.Assets, m.AppearanceMethodCd)
			break
		}
	}
	return adj
}

func attachedTo(doc upstream.CivilDocument, appearanceID string) bool {
	for _, a := range doc.Appearance {
		if a.AppearanceID == appearanceID {
			return true
		}
	}
	return false
}

func findAppearance(appearances *Appearances, appearanceID string) *Appearance {
	if appearances == nil {
		return nil
	}
	for i := range appearances.ApprDetail {
		if appearances.ApprDetail[i].AppearanceID == appearanceID {
			return &appearances.ApprDetail[i]
		}
	}
	return nil
}

func findPreviousAppearance(civilFile *upstream.ContentCivilFile, appearanceID string) *upstream.PreviousAppearance {
	if civilFile == nil {
		return nil
	}
	for i := range civilFile.PreviousAppearance {
		if civilFile.PreviousAppearance[i].AppearanceID == appearanceID {
			return &civilFile.PreviousAppearance[i]
		}
	}
	return nil
}

func findCourtListParty(parties []upstream.CLParty, partyID string) *upstream.CLParty {
	for i := range parties {
		if parties[i].PartyID == partyID {
			return &parties[i]
		}
	}
	return nil
}

func findParticipant(participants []upstream.CourtParticipant, partyID string) *upstream.CourtParticipant {
	for i := range participants {
		if participants[i].PartID == partyID {
			return &participants[i]
		}
	}
	return nil
}

package files

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/lookup"
	"github.com/JustJay7/court-viewer/internal/upstream"
)

var testNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

type fakeProvider struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error

	lastSearch       upstream.CivilSearchQuery
	lastSearchCaller upstream.Caller
	lastContent      upstream.FileContentQuery
	lastCourtList    upstream.CourtListQuery

	search      *upstream.FileSearchResponse
	details     map[string]*upstream.CivilFileDetailResponse
	contents    map[string]*upstream.CivilFileContent
	appearances map[string]*upstream.CivilFileAppearancesResponse
	parties     map[string]*upstream.CivilAppearancePartyResponse
	methods     map[string]*upstream.CivilAppearanceMethodResponse
	courtList   *upstream.CourtList
	report      []byte

	// detailGate, when set, holds CivilFileDetail until closed.
	detailGate chan struct{}
}

var _ upstream.FileServices = (*fakeProvider)(nil)

func (f *fakeProvider) hit(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[op]++
	return f.errs[op]
}

func (f *fakeProvider) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeProvider) fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errs == nil {
		f.errs = map[string]error{}
	}
	if err == nil {
		delete(f.errs, op)
		return
	}
	f.errs[op] = err
}

func (f *fakeProvider) SearchCivilFiles(_ context.Context, caller upstream.Caller, q upstream.CivilSearchQuery) (*upstream.FileSearchResponse, error) {
	if err := f.hit("SearchCivilFiles"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastSearch = q
	f.lastSearchCaller = caller
	f.mu.Unlock()
	return f.search, nil
}

func (f *fakeProvider) CivilFileDetail(ctx context.Context, _ upstream.Caller, id string) (*upstream.CivilFileDetailResponse, error) {
	if f.detailGate != nil {
		select {
		case <-f.detailGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.hit("CivilFileDetail"); err != nil {
		return nil, err
	}
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return &upstream.CivilFileDetailResponse{}, nil
}

func (f *fakeProvider) CivilFileContent(_ context.Context, q upstream.FileContentQuery) (*upstream.CivilFileContent, error) {
	if err := f.hit("CivilFileContent"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastContent = q
	f.mu.Unlock()
	return f.contents[q.PhysicalFileID], nil
}

func (f *fakeProvider) CivilAppearances(_ context.Context, _ upstream.Caller, _, _ bool, id string) (*upstream.CivilFileAppearancesResponse, error) {
	if err := f.hit("CivilAppearances"); err != nil {
		return nil, err
	}
	return f.appearances[id], nil
}

func (f *fakeProvider) CivilAppearanceParties(_ context.Context, _ upstream.Caller, id string) (*upstream.CivilAppearancePartyResponse, error) {
	if err := f.hit("CivilAppearanceParties"); err != nil {
		return nil, err
	}
	return f.parties[id], nil
}

func (f *fakeProvider) CivilAppearanceMethods(_ context.Context, _ upstream.Caller, id string) (*upstream.CivilAppearanceMethodResponse, error) {
	if err := f.hit("CivilAppearanceMethods"); err != nil {
		return nil, err
	}
	return f.methods[id], nil
}

func (f *fakeProvider) CourtList(_ context.Context, q upstream.CourtListQuery) (*upstream.CourtList, error) {
	if err := f.hit("CourtList"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastCourtList = q
	f.mu.Unlock()
	return f.courtList, nil
}

func (f *fakeProvider) CivilCourtSummaryReport(_ context.Context, _ upstream.Caller, _, _ string) (*upstream.ReportResponse, error) {
	if err := f.hit("CivilCourtSummaryReport"); err != nil {
		return nil, err
	}
	return &upstream.ReportResponse{ReportContent: f.report}, nil
}

type fakeLookups struct {
	long  map[lookup.Category]map[string]string
	short map[lookup.Category]map[string]string
}

func (f fakeLookups) Describe(_ context.Context, category lookup.Category, code string) string {
	return f.long[category][code]
}

func (f fakeLookups) DescribeShort(_ context.Context, category lookup.Category, code string) string {
	return f.short[category][code]
}

func (f fakeLookups) DocumentCategory(code string) string {
	return lookup.DefaultDocumentCategories().Classify(code)
}

func newFakeLookups() fakeLookups {
	return fakeLookups{
		long: map[lookup.Category]map[string]string{
			lookup.RoleType:              {"APP": "Applicant", "RES": "Respondent", "CLM": "Claimant", "WIT": "Witness", "ADJ": "Adjudicator"},
			lookup.Assets:                {"VC": "Video Conference", "IP": "In Person", "TC": "Teleconference"},
			lookup.PartyAttendanceType:   {"IP": "In Person"},
			lookup.CounselAttendanceType: {"TC": "Teleconference"},
			lookup.DocumentType:          {"AFF": "Affidavit", "ORD": "Order", "NAP": "Notice of Application"},
			lookup.IssueType:             {"DIV": "Divorce", "CUS": "Custody"},
			lookup.IssueResult:           {"GRA": "Granted"},
			lookup.HearingRestriction:    {"S": "Seized"},
			lookup.CourtClass:            {"F": "Family"},
			lookup.CourtLevel:            {"P": "Provincial"},
			lookup.ActivityClass:         {"F": "Family Law Act"},
			lookup.AppearanceReason:      {"TRL": "Trial"},
			lookup.AppearanceStatus:      {"SCHD": "Scheduled"},
		},
		short: map[lookup.Category]map[string]string{
			lookup.ActivityClass: {"F": "Family"},
		},
	}
}

type fakeLocations struct {
	agencies map[string]string
	names    map[string]string
	regions  map[string]string
}

func (f fakeLocations) ResolveAgencyIdentifier(_ context.Context, id string) string { return f.agencies[id] }
func (f fakeLocations) ResolveName(_ context.Context, id string) string             { return f.names[id] }
func (f fakeLocations) ResolveRegion(_ context.Context, code string) string         { return f.regions[code] }

func newFakeLocations() fakeLocations {
	return fakeLocations{
		agencies: map[string]string{"83.0001": "4801"},
		names:    map[string]string{"83.0001": "Robson Square"},
		regions:  map[string]string{"4801": "Vancouver Region"},
	}
}

func newTestService(t *testing.T, provider *fakeProvider) *Service {
	t.Helper()
	return NewService(provider, cache.NewStore(1000, time.Minute), newFakeLookups(), newFakeLocations(), nil, Options{
		ApplicationCd:       "SCV",
		SearchApplicationCd: "A2A",
		Now:                 func() time.Time { return testNow },
	})
}

var testRequester = Requester{AgencyID: "83.0001", PartID: "85114.0734"}

func scenarioProvider() *fakeProvider {
	return &fakeProvider{
		details: map[string]*upstream.CivilFileDetailResponse{
			"40": {
				PhysicalFileID:     "40",
				FileNumberTxt:      "P-241",
				CourtClassCd:       "F",
				CourtLevelCd:       "P",
				HomeLocationAgenID: "83.0001",
				Party: []upstream.CivilParty{
					{PartyID: "1", RoleTypeCd: "APP", LastNm: "Kings", GivenNm: "Stephen"},
					{PartyID: "2", RoleTypeCd: "RES", LastNm: "Jones", GivenNm: "Jane"},
				},
				Document: []upstream.CivilDocument{
					{
						CivilDocumentID: "100",
						DocumentTypeCd:  "AFF",
						SealedYN:        "N",
						ImageID:         "img-100",
						Issue:           []upstream.CivilIssue{{IssueNumber: "1", IssueTypeCd: "DIV"}},
						Appearance: []upstream.DocumentAppearance{
							{AppearanceID: "9001", AppearanceDate: "2024-06-01 09:30:00.0"},
							{AppearanceID: "9002", AppearanceDate: "2024-09-01 09:30:00.0"},
							{AppearanceID: "9003", AppearanceDate: "2024-07-01 09:30:00.0"},
						},
					},
					{CivilDocumentID: "101", DocumentTypeCd: "ORD", SealedYN: "Y", ImageID: "img-101"},
				},
				HearingRestriction: []upstream.HearingRestriction{
					{HearingRestrictionID: "1", HearingRestrictionTypeCd: "S", AdjFullNm: "Butler Mon Ami, R"},
					{HearingRestrictionID: "2", HearingRestrictionTypeCd: "D"},
				},
				Appearance: []upstream.FileAppearance{
					{AppearanceID: "9001", AppearanceDate: "2024-06-01"},
					{AppearanceID: "9002", AppearanceDate: "2024-09-01"},
				},
			},
			"2506": {
				PhysicalFileID:     "2506",
				FileNumberTxt:      "2506",
				HomeLocationAgenID: "999.9999",
			},
			"2222": {
				PhysicalFileID:     "2222",
				FileNumberTxt:      "12047",
				HomeLocationAgenID: "83.0001",
				Document: []upstream.CivilDocument{
					{
						CivilDocumentID: "500",
						DocumentTypeCd:  "NAP",
						SealedYN:        "N",
						ImageID:         "img-500",
						Issue:           []upstream.CivilIssue{{IssueNumber: "1", IssueTypeCd: "CUS", IssueResultCd: "GRA"}},
						Appearance:      []upstream.DocumentAppearance{{AppearanceID: "12047", AppearanceDate: "2024-05-02"}},
					},
					{
						CivilDocumentID: "501",
						DocumentTypeCd:  "AFF",
						SealedYN:        "Y",
						ImageID:         "img-501",
						Appearance:      []upstream.DocumentAppearance{{AppearanceID: "12047", AppearanceDate: "2024-05-02"}},
					},
					{
						CivilDocumentID: "502",
						DocumentTypeCd:  "ORD",
						SealedYN:        "N",
						Appearance:      []upstream.DocumentAppearance{{AppearanceID: "9999", AppearanceDate: "2024-01-02"}},
					},
				},
			},
		},
		contents: map[string]*upstream.CivilFileContent{
			"40": {CivilFile: []upstream.ContentCivilFile{{
				PhysicalFileID:  "40",
				FileCommentText: "Custody matter",
				Document: []upstream.ContentDocument{
					{DocumentID: "100", FiledBy: []upstream.FiledBy{{FiledByName: "Kings, Stephen", RoleTypeCode: "APP"}}},
				},
			}}},
			"2506": {CivilFile: []upstream.ContentCivilFile{{PhysicalFileID: "2506"}}},
			"2222": {CivilFile: []upstream.ContentCivilFile{{
				PhysicalFileID: "2222",
				PreviousAppearance: []upstream.PreviousAppearance{{
					AppearanceID:                "12047",
					AdjudicatorName:             "Butler Mon Ami, R",
					AdjudicatorAppearanceMethod: "VC",
					AdjudicatorComment:          "Adjourned generally",
					CourtParticipant: []upstream.CourtParticipant{
						{
							PartID:                "12",
							PartyAppearanceMethod: "IP",
							PartyRoleTypeCd:       "RES",
							Counsel: []upstream.ParticipantCounsel{
								{CounselName: "", CounselAppearanceMethod: "VC"},
								{CounselName: "PETER, John", CounselAppearanceMethod: "TC"},
							},
						},
					},
				}},
			}}},
		},
		appearances: map[string]*upstream.CivilFileAppearancesResponse{
			"40": {FutureRecCount: "1", HistoryRecCount: "1", ApprDetail: []upstream.AppearanceEntry{
				{AppearanceID: "9001", AppearanceDt: "2024-06-01", AppearanceReasonCd: "TRL", AppearanceStatusCd: "SCHD", CourtAgencyID: "83.0001", CourtRoomCd: "101"},
			}},
			"2506": {ApprDetail: []upstream.AppearanceEntry{
				{AppearanceID: "11034", AppearanceDt: "2024-04-11", CourtRoomCd: "201"},
			}},
			"2222": {ApprDetail: []upstream.AppearanceEntry{
				{AppearanceID: "12047", AppearanceDt: "2024-05-02", AppearanceReasonCd: "TRL", CourtRoomCd: "301", CourtAgencyID: "83.0001"},
			}},
		},
		parties: map[string]*upstream.CivilAppearancePartyResponse{
			"11034": {Party: []upstream.AppearanceParty{
				{PartyID: "1", LastNm: "SMITH", PartyRoleTypeCd: "APP"},
				{PartyID: "1", LastNm: "SMITH", PartyRoleTypeCd: "CLM"},
				{PartyID: "2", LastNm: "DOE", PartyRoleTypeCd: "RES"},
				{PartyID: "3", LastNm: "BYSTANDER", PartyRoleTypeCd: "WIT"},
			}},
			"12047": {Party: []upstream.AppearanceParty{
				{PartyID: "10", LastNm: "LEE", PartyRoleTypeCd: "APP"},
				{PartyID: "11", LastNm: "PARK", PartyRoleTypeCd: "APP"},
				{PartyID: "12", LastNm: "CHO", PartyRoleTypeCd: "RES"},
			}},
		},
		methods: map[string]*upstream.CivilAppearanceMethodResponse{
			"11034": {},
			"12047": {AppearanceMethod: []upstream.AppearanceMethod{
				{RoleTypeCd: "ADJ", AppearanceMethodCd: "VC"},
				{RoleTypeCd: "APP", AppearanceMethodCd: "VC"},
				{RoleTypeCd: "RES", AppearanceMethodCd: "IP"},
			}},
		},
		courtList: &upstream.CourtList{CivilCourtList: []upstream.CivilCourtListEntry{
			{AppearanceID: "11111"},
			{AppearanceID: "12047", Parties: []upstream.CLParty{{
				PartyID:            "12",
				AttendanceMethodCd: "IP",
				Counsel: []upstream.CLCounsel{
					{CounselID: "C1", CounselFullName: "PETER, John"},
					{CounselID: "C2", CounselFullName: "PETERS, Joan"},
				},
				Representative:      []upstream.CLRepresentative{{RepFullName: "Rep One", AttendanceMethodCd: "TC"}},
				LegalRepresentative: []upstream.CLLegalRepresentative{{LegalRepFullName: "Guardian", LegalRepTypeDsc: "Litigation Guardian"}},
			}}},
		}},
		report: []byte("%PDF-1.4"),
	}
}

func documentByID(t *testing.T, docs []Document, id string) Document {
	t.Helper()
	for _, d := range docs {
		if d.CivilDocumentID == id {
			return d
		}
	}
	t.Fatalf("document %s not found", id)
	return Document{}
}

package files

import (
	"time"

	"github.com/JustJay7/court-viewer/internal/upstream"
)

// Requester is the identity a request is served for. PartID scopes every
// cache entry so one participant never sees another's cached data.
type Requester struct {
	AgencyID string
	PartID   string
}

// CivilFileDetail is the denormalized, redacted file returned to clients.
type CivilFileDetail struct {
	PhysicalFileID         string                            `json:"physicalFileId"`
	FileNumberTxt          string                            `json:"fileNumberTxt,omitempty"`
	FilePrefixTxt          string                            `json:"filePrefixTxt,omitempty"`
	CourtClassCd           string                            `json:"courtClassCd,omitempty"`
	CourtClassDescription  string                            `json:"courtClassDescription,omitempty"`
	CourtLevelCd           string                            `json:"courtLevelCd,omitempty"`
	CourtLevelDescription  string                            `json:"courtLevelDescription,omitempty"`
	ActivityClassCd        string                            `json:"activityClassCd,omitempty"`
	ActivityClassDesc      string                            `json:"activityClassDesc,omitempty"`
	HomeLocationAgenID     string                            `json:"homeLocationAgenId,omitempty"`
	HomeLocationAgencyCode string                            `json:"homeLocationAgencyCode,omitempty"`
	HomeLocationAgencyName string                            `json:"homeLocationAgencyName,omitempty"`
	HomeLocationRegionName string                            `json:"homeLocationRegionName,omitempty"`
	SealStatusCd           string                            `json:"sealStatusCd,omitempty"`
	LeftRoleDsc            string                            `json:"leftRoleDsc,omitempty"`
	RightRoleDsc           string                            `json:"rightRoleDsc,omitempty"`
	SocTxt                 string                            `json:"socTxt,omitempty"`
	FileCommentText        string                            `json:"fileCommentText,omitempty"`
	Party                  []Party                           `json:"party"`
	Document               []Document                        `json:"document"`
	ReferenceDocument      []upstream.CivilReferenceDocument `json:"referenceDocument"`
	HearingRestriction     []HearingRestriction              `json:"hearingRestriction"`
	Appearances            *Appearances                      `json:"appearances,omitempty"`
}

type Party struct {
	PartyID             string                  `json:"partyId"`
	RoleTypeCd          string                  `json:"roleTypeCd"`
	RoleTypeDescription string                  `json:"roleTypeDescription"`
	LeftRightCd         string                  `json:"leftRightCd"`
	LastNm              string                  `json:"lastNm"`
	GivenNm             string                  `json:"givenNm"`
	OrgNm               string                  `json:"orgNm"`
	Counsel             []upstream.PartyCounsel `json:"counsel"`
}

// Document is a filed document, or a synthesized court summary report when
// Category is CategoryCSR.
type Document struct {
	CivilDocumentID         string                        `json:"civilDocumentId"`
	FileSeqNo               string                        `json:"fileSeqNo"`
	DocumentTypeCd          string                        `json:"documentTypeCd"`
	DocumentTypeDescription string                        `json:"documentTypeDescription"`
	Category                string                        `json:"category"`
	FiledDt                 string                        `json:"filedDt"`
	LastAppearanceDt        string                        `json:"lastAppearanceDt"`
	NextAppearanceDt        string                        `json:"nextAppearanceDt,omitempty"`
	CommentTxt              string                        `json:"commentTxt"`
	ConcludedYN             string                        `json:"concludedYn"`
	SealedYN                string                        `json:"sealedYN"`
	ImageID                 string                        `json:"imageId,omitempty"`
	FiledBy                 []upstream.FiledBy            `json:"filedBy"`
	Issue                   []Issue                       `json:"issue"`
	Appearance              []upstream.DocumentAppearance `json:"appearance,omitempty"`
}

type Issue struct {
	IssueNumber       string `json:"issueNumber"`
	IssueTypeCd       string `json:"issueTypeCd"`
	IssueTypeDesc     string `json:"issueTypeDesc"`
	IssueDsc          string `json:"issueDsc"`
	IssueResultCd     string `json:"issueResultCd"`
	IssueResultCdDesc string `json:"issueResultCdDesc,omitempty"`
	ConcludedYN       string `json:"concludedYn"`
}

type HearingRestriction struct {
	upstream.HearingRestriction
	HearingRestrictionTypeDsc string `json:"hearingRestrictionTypeDsc"`
}

type Appearances struct {
	FutureRecCount  string       `json:"futureRecCount"`
	HistoryRecCount string       `json:"historyRecCount"`
	ApprDetail      []Appearance `json:"apprDetail"`
}

type Appearance struct {
	upstream.AppearanceEntry
	AppearanceReasonDsc string `json:"appearanceReasonDsc"`
	AppearanceResultDsc string `json:"appearanceResultDsc"`
	AppearanceStatusDsc string `json:"appearanceStatusDsc"`
	CourtLocationID     string `json:"courtLocationId"`
	CourtLocation       string `json:"courtLocation"`
	DocumentTypeDsc     string `json:"documentTypeDsc"`
}

// AppearanceDetail joins everything known about one appearance on a file.
type AppearanceDetail struct {
	PhysicalFileID       string             `json:"physicalFileId"`
	AgencyID             string             `json:"agencyId"`
	AppearanceID         string             `json:"appearanceId"`
	AppearanceDt         string             `json:"appearanceDt"`
	AppearanceReasonCd   string             `json:"appearanceReasonCd"`
	AppearanceReasonDesc string             `json:"appearanceReasonDesc"`
	AppearanceResultCd   string             `json:"appearanceResultCd"`
	AppearanceResultDesc string             `json:"appearanceResultDesc"`
	CourtRoomCd          string             `json:"courtRoomCd"`
	FileNumberTxt        string             `json:"fileNumberTxt"`
	AppearanceMethod     []AppearanceMethod `json:"appearanceMethod"`
	Party                []AppearanceParty  `json:"party"`
	Document             []Document         `json:"document"`
	Adjudicator          *Adjudicator       `json:"adjudicator,omitempty"`
	AdjudicatorComment   string             `json:"adjudicatorComment,omitempty"`
}

type AppearanceMethod struct {
	RoleTypeCd           string `json:"roleTypeCd"`
	RoleTypeDesc         string `json:"roleTypeDesc"`
	AppearanceMethodCd   string `json:"appearanceMethodCd"`
	AppearanceMethodDesc string `json:"appearanceMethodDesc"`
	InstructionTxt       string `json:"instructionTxt,omitempty"`
}

// AppearanceParty merges one party's rows from the appearance party list,
// the court list and the previous appearance.
type AppearanceParty struct {
	PartyID                   string                           `json:"partyId"`
	LastNm                    string                           `json:"lastNm"`
	GivenNm                   string                           `json:"givenNm"`
	OrgNm                     string                           `json:"orgNm"`
	LeftRightCd               string                           `json:"leftRightCd"`
	PartyRole                 []PartyRole                      `json:"partyRole"`
	AppearanceMethodCd        string                           `json:"appearanceMethodCd,omitempty"`
	AppearanceMethodDesc      string                           `json:"appearanceMethodDesc,omitempty"`
	AttendanceMethodCd        string                           `json:"attendanceMethodCd,omitempty"`
	AttendanceMethodDesc      string                           `json:"attendanceMethodDesc,omitempty"`
	PartyAppearanceMethod     string                           `json:"partyAppearanceMethod,omitempty"`
	PartyAppearanceMethodDesc string                           `json:"partyAppearanceMethodDesc,omitempty"`
	Counsel                   []Counsel                        `json:"counsel"`
	Representative            []Representative                 `json:"representative"`
	LegalRepresentative       []upstream.CLLegalRepresentative `json:"legalRepresentative"`
}

type PartyRole struct {
	RoleTypeCd  string `json:"roleTypeCd"`
	RoleTypeDsc string `json:"roleTypeDsc"`
}

type Counsel struct {
	CounselID                   string `json:"counselId"`
	CounselFullName             string `json:"counselFullName"`
	PhoneNumber                 string `json:"phoneNumber,omitempty"`
	CounselAppearanceMethod     string `json:"counselAppearanceMethod,omitempty"`
	CounselAppearanceMethodDesc string `json:"counselAppearanceMethodDesc,omitempty"`
}

type Representative struct {
	RepFullName          string `json:"repFullName"`
	AttendanceMethodCd   string `json:"attendanceMethodCd"`
	AttendanceMethodDesc string `json:"attendanceMethodDesc"`
}

type Adjudicator struct {
	FullName                        string `json:"fullName"`
	AdjudicatorAppearanceMethod     string `json:"adjudicatorAppearanceMethod"`
	AdjudicatorAppearanceMethodDesc string `json:"adjudicatorAppearanceMethodDesc"`
	AppearanceMethodCd              string `json:"appearanceMethodCd"`
	AppearanceMethodDesc            string `json:"appearanceMethodDesc"`
}

// FileContentRequest selects a court-list slice of file content.
type FileContentRequest struct {
	AgencyID       string
	RoomCode       string
	Proceeding     *time.Time
	AppearanceID   string
	PhysicalFileID string
}

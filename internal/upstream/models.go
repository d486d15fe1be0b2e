package upstream

import "time"

// Caller identifies who a provider call is made on behalf of.
type Caller struct {
	AgencyID      string
	PartID        string
	ApplicationCd string
}

// Search modes understood by the civil search operation.
const (
	SearchModeFileNo   = "FILENO"
	SearchModePartName = "PARTNAME"
	SearchModePhysID   = "PHYSID"
	SearchModeJustinNo = "JUSTINNO"
)

// CivilSearchQuery carries every optional civil search criterion.
type CivilSearchQuery struct {
	SearchMode                   string     `form:"searchMode" json:"searchMode"`
	FileHomeAgencyID             string     `form:"fileHomeAgencyId" json:"fileHomeAgencyId"`
	FileNumber                   string     `form:"fileNumber" json:"fileNumber"`
	FilePrefix                   string     `form:"filePrefix" json:"filePrefix"`
	FilePermissions              string     `form:"-" json:"filePermissions"`
	FileSuffixNumber             string     `form:"fileSuffixNumber" json:"fileSuffixNumber"`
	MDocReferenceTypeCode        string     `form:"mDocReferenceTypeCode" json:"mDocReferenceTypeCode"`
	CourtClass                   string     `form:"courtClass" json:"courtClass"`
	CourtLevel                   string     `form:"courtLevel" json:"courtLevel"`
	NameSearchType               string     `form:"nameSearchType" json:"nameSearchType"`
	LastName                     string     `form:"lastName" json:"lastName"`
	OrgName                      string     `form:"orgName" json:"orgName"`
	GivenName                    string     `form:"givenName" json:"givenName"`
	Birth                        *time.Time `form:"birth" time_format:"2006-01-02" json:"birth"`
	SearchByCrownPartID          string     `form:"searchByCrownPartId" json:"searchByCrownPartId"`
	SearchByCrownActiveOnly      string     `form:"searchByCrownActiveOnly" json:"searchByCrownActiveOnly"`
	SearchByCrownFileDesignation string     `form:"searchByCrownFileDesignation" json:"searchByCrownFileDesignation"`
	MdocJustinNumberSet          string     `form:"mdocJustinNumberSet" json:"mdocJustinNumberSet"`
	PhysicalFileIDSet            string     `form:"physicalFileIdSet" json:"physicalFileIdSet"`
}

type FileSearchResponse struct {
	ResponseCd         string             `json:"responseCd"`
	ResponseMessageTxt string             `json:"responseMessageTxt"`
	RecCount           string             `json:"recCount"`
	FileDetail         []SearchFileDetail `json:"fileDetail"`
}

type SearchFileDetail struct {
	PhysicalFileID   string              `json:"physicalFileId"`
	FileNumberTxt    string              `json:"fileNumberTxt"`
	FileHomeAgencyID string              `json:"fileHomeAgencyId"`
	CourtClassCd     string              `json:"courtClassCd"`
	CourtLevelCd     string              `json:"courtLevelCd"`
	NextApprDt       string              `json:"nextApprDt"`
	SealStatusCd     string              `json:"sealStatusCd"`
	Participant      []SearchParticipant `json:"participant"`
}

type SearchParticipant struct {
	FullNm     string `json:"fullNm"`
	PartID     string `json:"partId"`
	RoleTypeCd string `json:"roleTypeCd"`
}

// CivilFileDetailResponse is the provider's full civil file record.
type CivilFileDetailResponse struct {
	PhysicalFileID     string                   `json:"physicalFileId"`
	FileNumberTxt      string                   `json:"fileNumberTxt"`
	FilePrefixTxt      string                   `json:"filePrefixTxt"`
	CourtClassCd       string                   `json:"courtClassCd"`
	CourtLevelCd       string                   `json:"courtLevelCd"`
	HomeLocationAgenID string                   `json:"homeLocationAgenId"`
	SealStatusCd       string                   `json:"sealStatusCd"`
	LeftRoleDsc        string                   `json:"leftRoleDsc"`
	RightRoleDsc       string                   `json:"rightRoleDsc"`
	SocTxt             string                   `json:"socTxt"`
	Party              []CivilParty             `json:"party"`
	Document           []CivilDocument          `json:"document"`
	ReferenceDocument  []CivilReferenceDocument `json:"referenceDocument"`
	HearingRestriction []HearingRestriction     `json:"hearingRestriction"`
	Appearance         []FileAppearance         `json:"appearance"`
}

type CivilParty struct {
	PartyID     string         `json:"partyId"`
	RoleTypeCd  string         `json:"roleTypeCd"`
	LeftRightCd string         `json:"leftRightCd"`
	LastNm      string         `json:"lastNm"`
	GivenNm     string         `json:"givenNm"`
	OrgNm       string         `json:"orgNm"`
	Counsel     []PartyCounsel `json:"counsel"`
}

type PartyCounsel struct {
	CounselID       string `json:"counselId"`
	CounselFullName string `json:"counselFullName"`
}

type CivilDocument struct {
	CivilDocumentID         string               `json:"civilDocumentId"`
	FileSeqNo               string               `json:"fileSeqNo"`
	DocumentTypeCd          string               `json:"documentTypeCd"`
	DocumentTypeDescription string               `json:"documentTypeDescription"`
	FiledDt                 string               `json:"filedDt"`
	LastAppearanceDt        string               `json:"lastAppearanceDt"`
	CommentTxt              string               `json:"commentTxt"`
	ConcludedYN             string               `json:"concludedYn"`
	SealedYN                string               `json:"sealedYN"`
	ImageID                 string               `json:"imageId"`
	Issue                   []CivilIssue         `json:"issue"`
	Appearance              []DocumentAppearance `json:"appearance"`
}

type CivilIssue struct {
	IssueNumber   string `json:"issueNumber"`
	IssueTypeCd   string `json:"issueTypeCd"`
	IssueDsc      string `json:"issueDsc"`
	IssueResultCd string `json:"issueResultCd"`
	ConcludedYN   string `json:"concludedYn"`
}

type DocumentAppearance struct {
	AppearanceID   string `json:"appearanceId"`
	AppearanceDate string `json:"appearanceDate"`
}

type CivilReferenceDocument struct {
	ObjectGUID               string `json:"objectGuid"`
	AppearanceID             string `json:"appearanceId"`
	AppearanceDate           string `json:"appearanceDate"`
	DescriptionText          string `json:"descriptionText"`
	PartyID                  string `json:"partyId"`
	PartyName                string `json:"partyName"`
	ReferenceDocumentTypeDsc string `json:"referenceDocumentTypeDsc"`
}

type HearingRestriction struct {
	HearingRestrictionID     string `json:"hearingRestrictionId"`
	HearingRestrictionTypeCd string `json:"hearingRestrictionTypeCd"`
	AdjFullNm                string `json:"adjFullNm"`
	HearingRestrictionDt     string `json:"hearingRestrictionDt"`
	PartyID                  string `json:"partyId"`
	DocumentID               string `json:"documentId"`
}

type FileAppearance struct {
	AppearanceID   string `json:"appearanceId"`
	AppearanceDate string `json:"appearanceDate"`
}

// CivilFileContent is the court-list oriented view of one or more files.
type CivilFileContent struct {
	CourtLocaCd         string             `json:"courtLocaCd"`
	CourtRoomCd         string             `json:"courtRoomCd"`
	CourtProceedingDate string             `json:"courtProceedingDate"`
	CivilFile           []ContentCivilFile `json:"civilFile"`
}

type ContentCivilFile struct {
	PhysicalFileID     string               `json:"physicalFileID"`
	FileCommentText    string               `json:"fileCommentText"`
	Document           []ContentDocument    `json:"document"`
	PreviousAppearance []PreviousAppearance `json:"previousAppearance"`
}

type ContentDocument struct {
	DocumentID string    `json:"documentId"`
	FiledBy    []FiledBy `json:"filedBy"`
}

type FiledBy struct {
	FiledByName  string `json:"filedByName"`
	RoleTypeCode string `json:"roleTypeCode"`
}

type PreviousAppearance struct {
	AppearanceID                string             `json:"appearanceId"`
	AdjudicatorName             string             `json:"adjudicatorName"`
	AdjudicatorAppearanceMethod string             `json:"adjudicatorAppearanceMethod"`
	AdjudicatorComment          string             `json:"adjudicatorComment"`
	CourtParticipant            []CourtParticipant `json:"courtParticipant"`
}

// CourtParticipant counsel rows carry no counsel id, only a display name.
type CourtParticipant struct {
	PartID                string               `json:"partId"`
	PartyAppearanceMethod string               `json:"partyAppearanceMethod"`
	PartyRoleTypeCd       string               `json:"partyRoleTypeCd"`
	Counsel               []ParticipantCounsel `json:"counsel"`
}

type ParticipantCounsel struct {
	CounselName             string `json:"counselName"`
	CounselAppearanceMethod string `json:"counselAppearanceMethod"`
}

type CivilFileAppearancesResponse struct {
	FutureRecCount  string            `json:"futureRecCount"`
	HistoryRecCount string            `json:"historyRecCount"`
	ApprDetail      []AppearanceEntry `json:"apprDetail"`
}

type AppearanceEntry struct {
	AppearanceID       string `json:"appearanceId"`
	AppearanceDt       string `json:"appearanceDt"`
	AppearanceTm       string `json:"appearanceTm"`
	AppearanceReasonCd string `json:"appearanceReasonCd"`
	AppearanceResultCd string `json:"appearanceResultCd"`
	AppearanceStatusCd string `json:"appearanceStatusCd"`
	CourtAgencyID      string `json:"courtAgencyId"`
	CourtRoomCd        string `json:"courtRoomCd"`
	JudgeFullNm        string `json:"judgeFullNm"`
	JudiciaryPersonID  string `json:"judiciaryPersonId"`
	DocumentTypeCd     string `json:"documentTypeCd"`
}

type CivilAppearancePartyResponse struct {
	Party []AppearanceParty `json:"party"`
}

type AppearanceParty struct {
	PartyID         string `json:"partyId"`
	LastNm          string `json:"lastNm"`
	GivenNm         string `json:"givenNm"`
	OrgNm           string `json:"orgNm"`
	PartyRoleTypeCd string `json:"partyRoleTypeCd"`
	LeftRightCd     string `json:"leftRightCd"`
}

type CivilAppearanceMethodResponse struct {
	AppearanceMethod []AppearanceMethod `json:"appearanceMethod"`
}

type AppearanceMethod struct {
	RoleTypeCd         string `json:"roleTypeCd"`
	AppearanceMethodCd string `json:"appearanceMethodCd"`
	InstructionTxt     string `json:"instructionTxt"`
}

type CourtListQuery struct {
	AgencyID   string
	RoomCode   string
	Proceeding string
	DivisionCd string
	FileNumber string
}

type CourtList struct {
	CivilCourtList []CivilCourtListEntry `json:"civilCourtList"`
}

type CivilCourtListEntry struct {
	AppearanceID string    `json:"appearanceId"`
	Parties      []CLParty `json:"parties"`
}

type CLParty struct {
	PartyID             string                  `json:"partyId"`
	AttendanceMethodCd  string                  `json:"attendanceMethodCd"`
	Counsel             []CLCounsel             `json:"counsel"`
	Representative      []CLRepresentative      `json:"representative"`
	LegalRepresentative []CLLegalRepresentative `json:"legalRepresentative"`
}

type CLCounsel struct {
	CounselID       string `json:"counselId"`
	CounselFullName string `json:"counselFullName"`
	PhoneNumber     string `json:"phoneNumber"`
}

type CLRepresentative struct {
	RepFullName        string `json:"repFullName"`
	AttendanceMethodCd string `json:"attendanceMethodCd"`
}

type CLLegalRepresentative struct {
	LegalRepFullName string `json:"legalRepFullName"`
	LegalRepTypeDsc  string `json:"legalRepTypeDsc"`
}

type FileContentQuery struct {
	AgencyID       string
	RoomCode       string
	Proceeding     string
	AppearanceID   string
	PhysicalFileID string
	ApplicationCd  string
}

type ReportResponse struct {
	ReportContent []byte `json:"reportContent"`
}

// LookupCode is one row of a provider code table.
type LookupCode struct {
	Code      string `json:"code"`
	ShortDesc string `json:"shortDesc"`
	LongDesc  string `json:"longDesc"`
}

type Location struct {
	LocationID string `json:"locationId"`
	AgencyCode string `json:"agencyCode"`
	Name       string `json:"name"`
}

type Region struct {
	RegionCode string `json:"regionCode"`
	RegionName string `json:"regionName"`
}

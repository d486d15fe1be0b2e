package upstream

import (
	"context"
	"net/url"

	"github.com/JustJay7/court-viewer/internal/config"
)

// FileServices is the court-records provider's civil file operation set.
type FileServices interface {
	SearchCivilFiles(ctx context.Context, caller Caller, query CivilSearchQuery) (*FileSearchResponse, error)
	CivilFileDetail(ctx context.Context, caller Caller, physicalFileID string) (*CivilFileDetailResponse, error)
	CivilFileContent(ctx context.Context, query FileContentQuery) (*CivilFileContent, error)
	CivilAppearances(ctx context.Context, caller Caller, future, history bool, physicalFileID string) (*CivilFileAppearancesResponse, error)
	CivilAppearanceParties(ctx context.Context, caller Caller, appearanceID string) (*CivilAppearancePartyResponse, error)
	CivilAppearanceMethods(ctx context.Context, caller Caller, appearanceID string) (*CivilAppearanceMethodResponse, error)
	CourtList(ctx context.Context, query CourtListQuery) (*CourtList, error)
	CivilCourtSummaryReport(ctx context.Context, caller Caller, appearanceID, reportName string) (*ReportResponse, error)
}

type FileClient struct {
	*client
}

var _ FileServices = (*FileClient)(nil)

func NewFileClient(endpoint config.ServiceEndpoint, opts Options) *FileClient {
	return &FileClient{client: newClient(endpoint, opts)}
}

func callerParams(caller Caller, kv ...string) url.Values {
	values := params(kv...)
	if caller.AgencyID != "" {
		values.Set("agencyIdentifierId", caller.AgencyID)
	}
	if caller.PartID != "" {
		values.Set("partId", caller.PartID)
	}
	if caller.ApplicationCd != "" {
		values.Set("applicationCd", caller.ApplicationCd)
	}
	return values
}

func (c *FileClient) SearchCivilFiles(ctx context.Context, caller Caller, q CivilSearchQuery) (*FileSearchResponse, error) {
	birth := ""
	if q.Birth != nil {
		birth = q.Birth.Format("2006-01-02")
	}
	query := callerParams(caller,
		"searchMode", q.SearchMode,
		"fileHomeAgencyId", q.FileHomeAgencyID,
		"fileNumber", q.FileNumber,
		"filePrefix", q.FilePrefix,
		"filePermissions", q.FilePermissions,
		"fileSuffixNumber", q.FileSuffixNumber,
		"mDocReferenceTypeCode", q.MDocReferenceTypeCode,
		"courtClass", q.CourtClass,
		"courtLevel", q.CourtLevel,
		"nameSearchType", q.NameSearchType,
		"lastName", q.LastName,
		"orgName", q.OrgName,
		"givenName", q.GivenName,
		"birthDate", birth,
		"searchByCrownPartId", q.SearchByCrownPartID,
		"searchByCrownActiveOnly", q.SearchByCrownActiveOnly,
		"searchByCrownFileDesignation", q.SearchByCrownFileDesignation,
		"mdocJustinNumberSet", q.MdocJustinNumberSet,
		"physicalFileIdSet", q.PhysicalFileIDSet,
	)

	var out FileSearchResponse
	if err := c.getJSON(ctx, "SearchCivilFiles", "/files/civil", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CivilFileDetail(ctx context.Context, caller Caller, physicalFileID string) (*CivilFileDetailResponse, error) {
	var out CivilFileDetailResponse
	path := "/files/civil/" + url.PathEscape(physicalFileID)
	if err := c.getJSON(ctx, "CivilFileDetail", path, callerParams(caller), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CivilFileContent(ctx context.Context, q FileContentQuery) (*CivilFileContent, error) {
	query := params(
		"agencyId", q.AgencyID,
		"roomCode", q.RoomCode,
		"proceeding", q.Proceeding,
		"appearanceId", q.AppearanceID,
		"physicalFileId", q.PhysicalFileID,
		"applicationCd", q.ApplicationCd,
	)

	var out CivilFileContent
	if err := c.getJSON(ctx, "CivilFileContent", "/files/civil/filecontent", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CivilAppearances(ctx context.Context, caller Caller, future, history bool, physicalFileID string) (*CivilFileAppearancesResponse, error) {
	query := callerParams(caller, "futureYN", yesNo(future), "historyYN", yesNo(history))
	path := "/files/civil/" + url.PathEscape(physicalFileID) + "/appearances"

	var out CivilFileAppearancesResponse
	if err := c.getJSON(ctx, "CivilAppearances", path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CivilAppearanceParties(ctx context.Context, caller Caller, appearanceID string) (*CivilAppearancePartyResponse, error) {
	path := "/files/civil/appearance/" + url.PathEscape(appearanceID) + "/parties"

	var out CivilAppearancePartyResponse
	if err := c.getJSON(ctx, "CivilAppearanceParties", path, callerParams(caller), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CivilAppearanceMethods(ctx context.Context, caller Caller, appearanceID string) (*CivilAppearanceMethodResponse, error) {
	path := "/files/civil/appearance/" + url.PathEscape(appearanceID) + "/appearancemethods"

	var out CivilAppearanceMethodResponse
	if err := c.getJSON(ctx, "CivilAppearanceMethods", path, callerParams(caller), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CourtList(ctx context.Context, q CourtListQuery) (*CourtList, error) {
	query := params(
		"agencyId", q.AgencyID,
		"roomCode", q.RoomCode,
		"proceeding", q.Proceeding,
		"divisionCd", q.DivisionCd,
		"fileNumber", q.FileNumber,
	)

	var out CourtList
	if err := c.getJSON(ctx, "CourtList", "/files/courtlist", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FileClient) CivilCourtSummaryReport(ctx context.Context, caller Caller, appearanceID, reportName string) (*ReportResponse, error) {
	query := callerParams(caller, "appearanceId", appearanceID, "reportName", reportName)

	var out ReportResponse
	if err := c.getJSON(ctx, "CivilCourtSummaryReport", "/files/civil/courtsummaryreport", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

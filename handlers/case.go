package handlers

import (
	"fmt"
	"net/http"
	"time"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// partyRequest mirrors one repeatable person sub-form on the case form
type partyRequest struct {
	FirstName    string `json:"first_name" form:"first_name"`
	LastName     string `json:"last_name" form:"last_name"`
	Mobile       string `json:"mobile" form:"mobile"`
	Email        string `json:"email" form:"email"`
	AddressLine1 string `json:"address_line1" form:"address_line1"`
	AddressLine2 string `json:"address_line2" form:"address_line2"`
	City         string `json:"city" form:"city"`
	State        string `json:"state" form:"state"`
	PostalCode   string `json:"postal_code" form:"postal_code"`
	Country      string `json:"country" form:"country"`
}

func (p partyRequest) details() models.PartyDetails {
	return models.PartyDetails{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Mobile:       optional(p.Mobile),
		Email:        optional(p.Email),
		AddressLine1: optional(p.AddressLine1),
		AddressLine2: optional(p.AddressLine2),
		City:         optional(p.City),
		State:        optional(p.State),
		PostalCode:   optional(p.PostalCode),
		Country:      optional(p.Country),
	}
}

// GetCasesHandler returns cases with client and lawyer names joined
func GetCasesHandler(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !models.IsValidCaseStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case status filter")
	}

	cases, err := services.GetCases(db.DB, status)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch cases")
	}
	return c.JSON(http.StatusOK, cases)
}

// GetCaseHandler returns a single case with its parties
func GetCaseHandler(c echo.Context) error {
	kase, err := services.GetCaseByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch case")
	}
	return c.JSON(http.StatusOK, kase)
}

// CreateCaseHandler creates a case together with its opposing clients and
// witnesses. Blank party sub-forms are skipped, not rejected.
func CreateCaseHandler(c echo.Context) error {
	var req struct {
		Title           string         `json:"title" form:"title"`
		CaseNumber      string         `json:"case_number" form:"case_number"`
		LawyerID        string         `json:"lawyer_id" form:"lawyer_id"`
		ClientID        string         `json:"client_id" form:"client_id"`
		CaseType        string         `json:"case_type" form:"case_type"`
		StartDate       string         `json:"start_date" form:"start_date"`
		CourtName       string         `json:"court_name" form:"court_name"`
		Description     string         `json:"description" form:"description"`
		OpposingClients []partyRequest `json:"opposing_clients"`
		Witnesses       []partyRequest `json:"witnesses"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" || req.CaseNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and case_number are required")
	}

	kase := &models.Case{
		Title:       req.Title,
		CaseNumber:  req.CaseNumber,
		LawyerID:    optional(req.LawyerID),
		ClientID:    optional(req.ClientID),
		CaseType:    optional(req.CaseType),
		StartDate:   optional(req.StartDate),
		CourtName:   optional(req.CourtName),
		Description: optional(req.Description),
		Status:      models.CaseStatusOpen,
	}

	parties := services.CaseParties{}
	for _, p := range req.OpposingClients {
		parties.OpposingClients = append(parties.OpposingClients, p.details())
	}
	for _, p := range req.Witnesses {
		parties.Witnesses = append(parties.Witnesses, p.details())
	}

	if err := services.CreateCaseWithParties(db.DB, kase, parties); err != nil {
		return storeHTTPError(err, "Failed to create case")
	}
	return c.JSON(http.StatusCreated, kase)
}

// UpdateCaseHandler applies a partial update to a case
func UpdateCaseHandler(c echo.Context) error {
	var req struct {
		Title       *string `json:"title" form:"title"`
		CaseNumber  *string `json:"case_number" form:"case_number"`
		LawyerID    *string `json:"lawyer_id" form:"lawyer_id"`
		ClientID    *string `json:"client_id" form:"client_id"`
		CaseType    *string `json:"case_type" form:"case_type"`
		StartDate   *string `json:"start_date" form:"start_date"`
		CourtName   *string `json:"court_name" form:"court_name"`
		Description *string `json:"description" form:"description"`
		Status      *string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Title != nil && *req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title cannot be empty")
	}
	if req.CaseNumber != nil && *req.CaseNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case_number cannot be empty")
	}
	if req.Status != nil && !models.IsValidCaseStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case status")
	}

	updates := map[string]interface{}{}
	applyString(updates, "title", req.Title, false)
	applyString(updates, "case_number", req.CaseNumber, false)
	applyString(updates, "lawyer_id", req.LawyerID, true)
	applyString(updates, "client_id", req.ClientID, true)
	applyString(updates, "case_type", req.CaseType, true)
	applyString(updates, "start_date", req.StartDate, true)
	applyString(updates, "court_name", req.CourtName, true)
	applyString(updates, "description", req.Description, true)
	applyString(updates, "status", req.Status, false)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateCase(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update case")
	}

	kase, err := services.GetCaseByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch case")
	}
	return c.JSON(http.StatusOK, kase)
}

// DeleteCaseHandler deletes a case
func DeleteCaseHandler(c echo.Context) error {
	if err := services.DeleteCase(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete case")
	}
	return c.NoContent(http.StatusNoContent)
}

// CaseSummaryPDFHandler streams a printable case summary
func CaseSummaryPDFHandler(c echo.Context) error {
	pdf, err := services.GenerateCaseSummaryPDF(c.Request().Context(), db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to generate case summary")
	}

	fileName := fmt.Sprintf("case_summary_%s.pdf", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// ExportCasesHandler streams all cases as an Excel workbook
func ExportCasesHandler(c echo.Context) error {
	buf, err := services.ExportCasesExcel(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to export cases")
	}

	fileName := fmt.Sprintf("cases_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GetClientsHandler returns clients for the case form dropdown
func GetClientsHandler(c echo.Context) error {
	clients, err := services.GetClients(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch clients")
	}
	return c.JSON(http.StatusOK, clients)
}

// CreateClientHandler creates a client from the case form's inline modal
func CreateClientHandler(c echo.Context) error {
	var req struct {
		Name    string `json:"name" form:"name"`
		Email   string `json:"email" form:"email"`
		Phone   string `json:"phone" form:"phone"`
		Address string `json:"address" form:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	client := &models.Client{
		Name:    req.Name,
		Email:   optional(req.Email),
		Phone:   optional(req.Phone),
		Address: optional(req.Address),
	}
	if err := services.CreateClient(db.DB, client); err != nil {
		return storeHTTPError(err, "Failed to create client")
	}
	return c.JSON(http.StatusCreated, client)
}

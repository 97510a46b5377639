package handlers

import (
	"fmt"
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetDocumentsHandler returns uploaded documents, optionally for one case
func GetDocumentsHandler(c echo.Context) error {
	documents, err := services.GetDocuments(db.DB, c.QueryParam("case_id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch documents")
	}
	return c.JSON(http.StatusOK, documents)
}

// UploadDocumentHandler accepts a multipart upload and stores it through
// the configured storage provider
func UploadDocumentHandler(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	caseID := optional(c.FormValue("case_id"))

	doc, err := services.UploadDocument(c.Request().Context(), db.DB, file, caseID)
	if err != nil {
		return storeHTTPError(err, "Failed to upload document")
	}
	return c.JSON(http.StatusCreated, doc)
}

// DownloadDocumentHandler streams the stored file back to the client
func DownloadDocumentHandler(c echo.Context) error {
	reader, doc, err := services.OpenDocument(c.Request().Context(), db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to open document")
	}
	defer reader.Close()

	contentType := doc.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.FileOriginalName))
	return c.Stream(http.StatusOK, contentType, reader)
}

// DeleteDocumentHandler removes the record and the stored object
func DeleteDocumentHandler(c echo.Context) error {
	if err := services.DeleteDocument(c.Request().Context(), db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete document")
	}
	return c.NoContent(http.StatusNoContent)
}

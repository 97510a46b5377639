package handlers

import (
	"log"
	"net/http"

	"legal_crm_go/config"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// AppConfig is set once at startup, before any route is registered.
var AppConfig *config.Config

// storeHTTPError translates a store failure into the response taxonomy:
// 404 for missing records, 409 for constraint violations, 500 otherwise.
// The raw error is logged; the client gets a short readable message.
func storeHTTPError(err error, fallback string) *echo.HTTPError {
	if services.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "Record not found")
	}
	if services.IsConflict(err) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	log.Printf("Store error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}

// optional normalizes a blank submitted string to null at the store boundary.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// applyString stages a submitted field into a partial update. Fields the
// client did not send stay untouched; a submitted blank clears a nullable
// column to null.
func applyString(updates map[string]interface{}, column string, value *string, nullable bool) {
	if value == nil {
		return
	}
	if nullable && *value == "" {
		updates[column] = nil
		return
	}
	updates[column] = *value
}

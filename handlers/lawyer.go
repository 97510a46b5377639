package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetLawyersHandler returns all lawyers, newest first
func GetLawyersHandler(c echo.Context) error {
	lawyers, err := services.GetLawyers(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch lawyers")
	}
	return c.JSON(http.StatusOK, lawyers)
}

// GetLawyerHandler returns a single lawyer by id
func GetLawyerHandler(c echo.Context) error {
	lawyer, err := services.GetLawyerByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch lawyer")
	}
	return c.JSON(http.StatusOK, lawyer)
}

// CreateLawyerHandler creates a new lawyer
func CreateLawyerHandler(c echo.Context) error {
	var req struct {
		Name              string                   `json:"name" form:"name"`
		Gender            string                   `json:"gender" form:"gender"`
		Dob               string                   `json:"dob" form:"dob"`
		Age               *int                     `json:"age" form:"age"`
		Email             string                   `json:"email" form:"email"`
		Mobile            string                   `json:"mobile" form:"mobile"`
		Address           string                   `json:"address" form:"address"`
		City              string                   `json:"city" form:"city"`
		State             string                   `json:"state" form:"state"`
		PostalCode        string                   `json:"postal_code" form:"postal_code"`
		Country           string                   `json:"country" form:"country"`
		LawyerType        string                   `json:"lawyer_type" form:"lawyer_type"`
		CaseBasedBillRate *float64                 `json:"case_based_bill_rate" form:"case_based_bill_rate"`
		TimeBasedBillRate *float64                 `json:"time_based_bill_rate" form:"time_based_bill_rate"`
		MonthlyBillRate   *float64                 `json:"monthly_bill_rate" form:"monthly_bill_rate"`
		PaymentDetails    models.PaymentDetailList `json:"payment_details"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	lawyer := &models.Lawyer{
		Name:              req.Name,
		Gender:            optional(req.Gender),
		Dob:               optional(req.Dob),
		Age:               req.Age,
		Email:             optional(req.Email),
		Mobile:            optional(req.Mobile),
		Address:           optional(req.Address),
		City:              optional(req.City),
		State:             optional(req.State),
		PostalCode:        optional(req.PostalCode),
		Country:           optional(req.Country),
		LawyerType:        optional(req.LawyerType),
		CaseBasedBillRate: req.CaseBasedBillRate,
		TimeBasedBillRate: req.TimeBasedBillRate,
		MonthlyBillRate:   req.MonthlyBillRate,
		PaymentDetails:    req.PaymentDetails,
	}
	if err := services.CreateLawyer(db.DB, lawyer); err != nil {
		return storeHTTPError(err, "Failed to create lawyer")
	}
	return c.JSON(http.StatusCreated, lawyer)
}

// UpdateLawyerHandler applies a partial update to a lawyer
func UpdateLawyerHandler(c echo.Context) error {
	var req struct {
		Name              *string                   `json:"name" form:"name"`
		Gender            *string                   `json:"gender" form:"gender"`
		Dob               *string                   `json:"dob" form:"dob"`
		Age               *int                      `json:"age" form:"age"`
		Email             *string                   `json:"email" form:"email"`
		Mobile            *string                   `json:"mobile" form:"mobile"`
		Address           *string                   `json:"address" form:"address"`
		City              *string                   `json:"city" form:"city"`
		State             *string                   `json:"state" form:"state"`
		PostalCode        *string                   `json:"postal_code" form:"postal_code"`
		Country           *string                   `json:"country" form:"country"`
		LawyerType        *string                   `json:"lawyer_type" form:"lawyer_type"`
		CaseBasedBillRate *float64                  `json:"case_based_bill_rate" form:"case_based_bill_rate"`
		TimeBasedBillRate *float64                  `json:"time_based_bill_rate" form:"time_based_bill_rate"`
		MonthlyBillRate   *float64                  `json:"monthly_bill_rate" form:"monthly_bill_rate"`
		PaymentDetails    *models.PaymentDetailList `json:"payment_details"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name cannot be empty")
	}

	updates := map[string]interface{}{}
	applyString(updates, "name", req.Name, false)
	applyString(updates, "gender", req.Gender, true)
	applyString(updates, "dob", req.Dob, true)
	applyString(updates, "email", req.Email, true)
	applyString(updates, "mobile", req.Mobile, true)
	applyString(updates, "address", req.Address, true)
	applyString(updates, "city", req.City, true)
	applyString(updates, "state", req.State, true)
	applyString(updates, "postal_code", req.PostalCode, true)
	applyString(updates, "country", req.Country, true)
	applyString(updates, "lawyer_type", req.LawyerType, true)
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.CaseBasedBillRate != nil {
		updates["case_based_bill_rate"] = *req.CaseBasedBillRate
	}
	if req.TimeBasedBillRate != nil {
		updates["time_based_bill_rate"] = *req.TimeBasedBillRate
	}
	if req.MonthlyBillRate != nil {
		updates["monthly_bill_rate"] = *req.MonthlyBillRate
	}
	if req.PaymentDetails != nil {
		updates["payment_details"] = *req.PaymentDetails
	}

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateLawyer(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update lawyer")
	}

	lawyer, err := services.GetLawyerByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch lawyer")
	}
	return c.JSON(http.StatusOK, lawyer)
}

// DeleteLawyerHandler deletes a lawyer
func DeleteLawyerHandler(c echo.Context) error {
	if err := services.DeleteLawyer(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete lawyer")
	}
	return c.NoContent(http.StatusNoContent)
}

// DuplicateLawyerHandler clones a lawyer into a new record
func DuplicateLawyerHandler(c echo.Context) error {
	copy, err := services.DuplicateLawyer(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to duplicate lawyer")
	}
	return c.JSON(http.StatusCreated, copy)
}

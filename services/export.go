package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportContactsExcel builds an Excel workbook with all contacts, used by
// the list view's export action.
func ExportContactsExcel(dbConn *gorm.DB) (*bytes.Buffer, error) {
	contacts, err := GetContacts(dbConn, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contacts"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"First Name", "Last Name", "Email", "Phone", "Company", "Status", "Source", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, contact := range contacts {
		values := []interface{}{
			contact.FirstName,
			contact.LastName,
			deref(contact.Email),
			deref(contact.Phone),
			deref(contact.Company),
			contact.Status,
			deref(contact.Source),
			contact.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// ExportCasesExcel builds an Excel workbook with all cases and their
// client/lawyer names.
func ExportCasesExcel(dbConn *gorm.DB) (*bytes.Buffer, error) {
	cases, err := GetCases(dbConn, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cases"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Title", "Case Number", "Client", "Lawyer", "Type", "Court", "Status", "Start Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, kase := range cases {
		clientName := ""
		if kase.Client != nil {
			clientName = kase.Client.Name
		}
		lawyerName := ""
		if kase.Lawyer != nil {
			lawyerName = kase.Lawyer.Name
		}
		values := []interface{}{
			kase.Title,
			kase.CaseNumber,
			clientName,
			lawyerName,
			deref(kase.CaseType),
			deref(kase.CourtName),
			kase.Status,
			deref(kase.StartDate),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

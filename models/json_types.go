package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of tags as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// PaymentDetail is one row of a lawyer's payment history.
type PaymentDetail struct {
	PaymentFor    string `json:"payment_for"`
	CaseName      string `json:"case_name"`
	BillDate      string `json:"bill_date"`
	PaidAmount    string `json:"paid_amount"`
	Lawyer        string `json:"lawyer"`
	PaidForLawyer string `json:"paid_for_lawyer"`
	Description   string `json:"description"`
}

// PaymentDetailList stores payment detail rows as a JSON column.
type PaymentDetailList []PaymentDetail

func (l PaymentDetailList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *PaymentDetailList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for PaymentDetailList: %T", value)
	}
}

// FormField is one field definition inside an intake form.
type FormField struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"` // text, textarea, email, phone, number, date, select, checkbox
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// FormFieldList stores form field definitions as a JSON column.
type FormFieldList []FormField

func (l FormFieldList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *FormFieldList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for FormFieldList: %T", value)
	}
}

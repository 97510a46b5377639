package services

import (
	"fmt"
	"log"
	"time"

	"legal_crm_go/config"
	"legal_crm_go/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
	"gorm.io/gorm"
)

var htmlPolicy = bluemonday.UGCPolicy()

// SanitizeEmailHTML strips unsafe markup from template HTML before it is
// persisted. Applied at the store boundary on create and update.
func SanitizeEmailHTML(html string) string {
	return htmlPolicy.Sanitize(html)
}

// EmailTemplateWithStats pairs a template with its delivery counters for
// the list view.
type EmailTemplateWithStats struct {
	models.EmailTemplate
	Stats models.EmailStats `json:"stats"`
}

// GetEmailTemplates fetches templates, newest first, with optional type filter
func GetEmailTemplates(dbConn *gorm.DB, emailType string) ([]models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	query := dbConn.Order("created_at desc")
	if emailType != "" {
		query = query.Where("email_type = ?", emailType)
	}
	if err := query.Find(&templates).Error; err != nil {
		return nil, storeError(err)
	}
	return templates, nil
}

// GetEmailTemplatesWithStats returns templates together with their
// sends/opens/clicks counters. The counters come from one grouped query
// instead of three count queries per template; each counter is still
// independent, with no cross-consistency guarantee between them.
func GetEmailTemplatesWithStats(dbConn *gorm.DB, emailType string) ([]EmailTemplateWithStats, error) {
	templates, err := GetEmailTemplates(dbConn, emailType)
	if err != nil {
		return nil, err
	}

	type statsRow struct {
		TemplateID string
		Sends      int64
		Opens      int64
		Clicks     int64
	}
	var rows []statsRow
	err = dbConn.Model(&models.EmailSend{}).
		Select("template_id, count(*) as sends, count(opened_at) as opens, count(clicked_at) as clicks").
		Group("template_id").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err)
	}

	statsByTemplate := make(map[string]models.EmailStats, len(rows))
	for _, row := range rows {
		statsByTemplate[row.TemplateID] = models.EmailStats{Sends: row.Sends, Opens: row.Opens, Clicks: row.Clicks}
	}

	result := make([]EmailTemplateWithStats, 0, len(templates))
	for _, tmpl := range templates {
		result = append(result, EmailTemplateWithStats{EmailTemplate: tmpl, Stats: statsByTemplate[tmpl.ID]})
	}
	return result, nil
}

// GetEmailTemplateByID fetches a single template
func GetEmailTemplateByID(dbConn *gorm.DB, id string) (*models.EmailTemplate, error) {
	var tmpl models.EmailTemplate
	if err := dbConn.First(&tmpl, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &tmpl, nil
}

// CreateEmailTemplate inserts a new template, sanitizing its HTML body
func CreateEmailTemplate(dbConn *gorm.DB, tmpl *models.EmailTemplate) error {
	if tmpl.HTMLContent != nil {
		clean := SanitizeEmailHTML(*tmpl.HTMLContent)
		tmpl.HTMLContent = &clean
	}
	return storeError(dbConn.Create(tmpl).Error)
}

// UpdateEmailTemplate applies a partial update, sanitizing HTML if submitted
func UpdateEmailTemplate(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	if html, ok := updates["html_content"].(string); ok {
		updates["html_content"] = SanitizeEmailHTML(html)
	}
	result := dbConn.Model(&models.EmailTemplate{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEmailTemplate removes a template. Its send log rows keep a
// dangling template_id.
func DeleteEmailTemplate(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.EmailTemplate{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CampaignResult summarizes a campaign send.
type CampaignResult struct {
	TemplateID string `json:"template_id"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

// SendCampaign delivers a template to every contact that has an email
// address, recording an email_sends row per recipient. In test mode the
// message is logged instead of sent. Failures are per-recipient; one
// bounce does not abort the campaign.
func SendCampaign(dbConn *gorm.DB, cfg *config.Config, templateID string) (*CampaignResult, error) {
	tmpl, err := GetEmailTemplateByID(dbConn, templateID)
	if err != nil {
		return nil, err
	}

	contacts, err := GetContacts(dbConn, "")
	if err != nil {
		return nil, err
	}

	result := &CampaignResult{TemplateID: tmpl.ID}

	var client *resend.Client
	if !cfg.EmailTestMode {
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is not configured")
		}
		client = resend.NewClient(cfg.ResendAPIKey)
	}

	for _, contact := range contacts {
		if contact.Email == nil || *contact.Email == "" {
			continue
		}
		recipient := *contact.Email

		if cfg.EmailTestMode {
			log.Printf("[EMAIL TEST MODE] To: %s | Subject: %s", recipient, tmpl.Subject)
		} else {
			params := &resend.SendEmailRequest{
				From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
				To:      []string{recipient},
				Subject: tmpl.Subject,
			}
			if tmpl.HTMLContent != nil {
				params.Html = *tmpl.HTMLContent
			}
			if tmpl.TextContent != nil {
				params.Text = *tmpl.TextContent
			}
			if _, err := client.Emails.Send(params); err != nil {
				log.Printf("Error sending campaign email to %s: %v", recipient, err)
				result.Failed++
				continue
			}
		}

		send := models.EmailSend{
			TemplateID: tmpl.ID,
			Recipient:  recipient,
			SentAt:     time.Now().UTC(),
		}
		if err := dbConn.Create(&send).Error; err != nil {
			log.Printf("Error recording email send for %s: %v", recipient, err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	return result, nil
}

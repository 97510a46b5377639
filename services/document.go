package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetDocuments fetches documents with their case joined, newest first.
// An optional case id narrows to one case's documents.
func GetDocuments(dbConn *gorm.DB, caseID string) ([]models.Document, error) {
	var documents []models.Document
	query := dbConn.Preload("Case").Order("created_at desc")
	if caseID != "" {
		query = query.Where("case_id = ?", caseID)
	}
	if err := query.Find(&documents).Error; err != nil {
		return nil, storeError(err)
	}
	return documents, nil
}

// GetDocumentByID fetches a single document record
func GetDocumentByID(dbConn *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	if err := dbConn.Preload("Case").First(&doc, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &doc, nil
}

// UploadDocument stores the file through the storage provider and records
// its metadata. The upload and the record insert are not atomic; a failed
// insert leaves an orphaned object, which is cleaned up best-effort.
func UploadDocument(ctx context.Context, dbConn *gorm.DB, file *multipart.FileHeader, caseID *string) (*models.Document, error) {
	if Storage == nil {
		return nil, fmt.Errorf("document storage is not initialized")
	}

	key := DocumentKey(file.Filename)
	result, err := Storage.Upload(ctx, file, key)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		CaseID:           caseID,
		FileName:         result.FileName,
		FileOriginalName: file.Filename,
		FileSize:         result.FileSize,
		MimeType:         result.MimeType,
		StorageKey:       result.Key,
	}
	if err := dbConn.Create(doc).Error; err != nil {
		_ = Storage.Delete(ctx, key)
		return nil, storeError(err)
	}
	return doc, nil
}

// OpenDocument returns a reader over the stored file content
func OpenDocument(ctx context.Context, dbConn *gorm.DB, id string) (io.ReadCloser, *models.Document, error) {
	doc, err := GetDocumentByID(dbConn, id)
	if err != nil {
		return nil, nil, err
	}
	reader, contentType, err := Storage.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	if doc.MimeType == "" {
		doc.MimeType = contentType
	}
	return reader, doc, nil
}

// DeleteDocument removes the record and then the stored object. A storage
// deletion failure is logged by the caller but does not resurrect the row.
func DeleteDocument(ctx context.Context, dbConn *gorm.DB, id string) error {
	doc, err := GetDocumentByID(dbConn, id)
	if err != nil {
		return err
	}

	result := dbConn.Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}

	return Storage.Delete(ctx, doc.StorageKey)
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Translation model.
//
// Every read and delete is scoped by the owning user ID, so a record that
// exists but belongs to someone else is indistinguishable from a record that
// does not exist.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
)

// CreateTranslation inserts a completed translation record owned by userID.
// The translation ID is a randomly generated UUID (string), and CreatedAt is
// set to UTC.
func CreateTranslation(ctx context.Context, db *gorm.DB, userID, sourceText, translatedText, sourceLang, targetLang string, reqContext, metadata map[string]any) (*domain.Translation, error) {
	t := &domain.Translation{
		ID:             uuid.NewString(),
		UserID:         userID,
		SourceText:     sourceText,
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		Context:        datatypes.JSONMap(reqContext),
		Metadata:       datatypes.JSONMap(metadata),
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// GetTranslation fetches a single translation by its ID and owner (userID).
// If the record does not exist or is owned by another user, it returns
// ErrNotFound. On other DB errors, the raw error is returned.
func GetTranslation(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Translation, error) {
	var t domain.Translation
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CountTranslations returns the total number of translations owned by userID.
// On DB error, it returns the error.
func CountTranslations(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Translation{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListTranslationsPage returns a paginated slice of translations for userID,
// ordered by creation time descending. Use CountTranslations to obtain the
// total for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListTranslationsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Translation, error) {
	var out []domain.Translation
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteTranslation soft-deletes a translation identified by id and owned by
// userID. If no rows are affected (record missing or not owned by userID),
// it returns ErrNotFound. On DB error, the raw error is returned.
func DeleteTranslation(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Translation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

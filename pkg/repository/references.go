package repository

import (
	"errors"

	"gorm.io/gorm"

	"droscher.com/BrewLog/pkg/validation"
)

// lockReference loads the row a foreign key points at, holding a share lock
// on it for the rest of the transaction. A nil id is not a reference.
func lockReference(tx *gorm.DB, dest any, id *uint, field string, entity string) error {
	if id == nil {
		return nil
	}

	err := tx.Clauses(shareLock).Take(dest, *id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return validation.ReferenceNotFound(field, entity)
	}

	return err
}

// mustExist returns gorm.ErrRecordNotFound when no row has the given id.
func mustExist(tx *gorm.DB, value any, id uint) error {
	var count int64

	if err := tx.Model(value).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BrewLog/pkg/model"
)

type TastingNoteRepository interface {
	AddTastingNote(ctx context.Context, note model.TastingNote) (*model.TastingNote, error)
	DeleteTastingNote(ctx context.Context, noteID uint) error
	GetTastingNoteByID(ctx context.Context, noteID uint) (*model.TastingNote, error)
	ListTastingNotes(ctx context.Context, tastingID *uint) ([]*model.TastingNote, error)
	UpdateTastingNote(ctx context.Context, note *model.TastingNote) (*model.TastingNote, error)
}

func (r *Repository) ListTastingNotes(ctx context.Context, tastingID *uint) ([]*model.TastingNote, error) {
	var notes []*model.TastingNote

	query := r.DB.WithContext(ctx)
	if tastingID != nil {
		query = query.Where("tasting_entry_id = ?", *tastingID)
	}

	if result := query.Order("created_at ASC, id ASC").Find(&notes); result.Error != nil {
		return nil, result.Error
	}

	return notes, nil
}

func (r *Repository) GetTastingNoteByID(ctx context.Context, noteID uint) (*model.TastingNote, error) {
	var note model.TastingNote

	if result := r.DB.WithContext(ctx).First(&note, noteID); result.Error != nil {
		return nil, result.Error
	}

	return &note, nil
}

func (r *Repository) AddTastingNote(ctx context.Context, note model.TastingNote) (*model.TastingNote, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTasting(tx, note.TastingEntryID); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&note).Error
	})
	if err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *Repository) UpdateTastingNote(ctx context.Context, note *model.TastingNote) (*model.TastingNote, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.TastingNote{}, note.ID); err != nil {
			return err
		}

		if err := lockTasting(tx, note.TastingEntryID); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(note).Error
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repository) DeleteTastingNote(ctx context.Context, noteID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.TastingNote{}, noteID); err != nil {
			return err
		}

		return tx.Delete(&model.TastingNote{}, noteID).Error
	})
}

func lockTasting(tx *gorm.DB, tastingID uint) error {
	return lockReference(tx, &model.TastingEntry{}, &tastingID, "tastingEntryId", "テイスティング")
}

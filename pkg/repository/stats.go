package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"droscher.com/BrewLog/pkg/model"
)

type StatsRepository interface {
	GetJournalStats(ctx context.Context) (*model.JournalStats, error)
	GetTopBeans(ctx context.Context, limit int) ([]model.BeanRanking, error)
}

func (r *Repository) GetJournalStats(ctx context.Context) (*model.JournalStats, error) {
	var stats model.JournalStats

	db := r.DB.WithContext(ctx)

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{db.Model(&model.CoffeeBean{}), &stats.BeanCount},
		{db.Model(&model.CoffeeBean{}).Where("status = ?", model.StatusInStock), &stats.InStockCount},
		{db.Model(&model.CoffeeBean{}).Where("status = ?", model.StatusFinished), &stats.FinishedCount},
		{db.Model(&model.Shop{}), &stats.ShopCount},
		{db.Model(&model.TastingEntry{}), &stats.TastingCount},
		{db.Model(&model.TastingNote{}), &stats.TastingNoteCount},
	}

	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&model.CoffeeBean{}).Select("coalesce(sum(price), 0)").Row().Scan(&stats.TotalSpent)
	if err != nil {
		return nil, err
	}

	var average sql.NullFloat64

	if err := db.Model(&model.TastingEntry{}).Select("avg(overall_rating)").Row().Scan(&average); err != nil {
		return nil, err
	}

	if average.Valid {
		stats.AverageOverallRating = &average.Float64
	}

	return &stats, nil
}

// GetTopBeans ranks beans by the mean overall rating of their tastings.
// Tastings without an overall rating are ignored.
func (r *Repository) GetTopBeans(ctx context.Context, limit int) ([]model.BeanRanking, error) {
	var rankings []model.BeanRanking

	result := r.DB.WithContext(ctx).
		Table("tasting_entries").
		Select("coffee_beans.id AS coffee_bean_id, coffee_beans.name AS name, " +
			"count(tasting_entries.id) AS tasting_count, avg(tasting_entries.overall_rating) AS average_rating").
		Joins("JOIN coffee_beans ON coffee_beans.id = tasting_entries.coffee_bean_id").
		Where("tasting_entries.overall_rating IS NOT NULL").
		Group("coffee_beans.id, coffee_beans.name").
		Order("average_rating DESC, tasting_count DESC, coffee_beans.id ASC").
		Limit(limit).
		Scan(&rankings)
	if result.Error != nil {
		return nil, result.Error
	}

	return rankings, nil
}

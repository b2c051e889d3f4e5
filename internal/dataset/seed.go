package dataset

import (
	"api/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed upserts the dataset into the aggregate tables. Rows are keyed by
// their natural identifiers so reseeding with a newer document updates
// counts in place; display order follows document order.
func Seed(db *gorm.DB, doc *Document) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := make([]models.CategoryStat, 0, len(doc.Categories))
		for i, c := range doc.Categories {
			categories = append(categories, models.CategoryStat{
				Key:       c.Key,
				Label:     c.Label,
				Position:  i,
				Count:     c.Count,
				WordCount: c.WordCount,
			})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "position", "count", "word_count"}),
		}).Create(&categories).Error; err != nil {
			return err
		}

		actCategories := make([]models.ActCategoryCount, 0, len(doc.ActCategories))
		for i, a := range doc.ActCategories {
			actCategories = append(actCategories, models.ActCategoryCount{
				Category: a.Category,
				Position: i,
				Count:    a.Count,
			})
		}
		if len(actCategories) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "category"}},
				DoUpdates: clause.AssignmentColumns([]string{"position", "count"}),
			}).Create(&actCategories).Error; err != nil {
				return err
			}
		}

		buckets := make([]models.WordCountBucket, 0, len(doc.WordCountBuckets))
		for i, b := range doc.WordCountBuckets {
			buckets = append(buckets, models.WordCountBucket{
				Range:    b.Range,
				Position: i,
				NumFiles: b.NumFiles,
			})
		}
		if len(buckets) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "range"}},
				DoUpdates: clause.AssignmentColumns([]string{"position", "num_files"}),
			}).Create(&buckets).Error; err != nil {
				return err
			}
		}

		zap.L().Info("Seeded dataset",
			zap.Int("categories", len(categories)),
			zap.Int("act_categories", len(actCategories)),
			zap.Int("word_count_buckets", len(buckets)))

		return nil
	})
}

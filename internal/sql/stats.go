package sql

import (
	"errors"

	apierrors "api/internal/errors"
	"api/internal/models"

	"gorm.io/gorm"
)

// GetCategoryStats returns all category rows in display order.
func GetCategoryStats(db *gorm.DB) ([]models.CategoryStat, error) {
	var categories []models.CategoryStat
	if err := db.Order("position ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryStat returns a single category row by key.
func GetCategoryStat(db *gorm.DB, key models.CategoryKey) (models.CategoryStat, error) {
	var category models.CategoryStat
	if err := db.Where("key = ?", key).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CategoryStat{}, apierrors.NewAPIError(404, apierrors.ErrCategoryNotFound)
		}
		return models.CategoryStat{}, err
	}
	return category, nil
}

// GetActCategoryCounts returns the acts-by-category rows in display order.
func GetActCategoryCounts(db *gorm.DB) ([]models.ActCategoryCount, error) {
	var counts []models.ActCategoryCount
	if err := db.Order("position ASC").Find(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// GetWordCountBuckets returns the histogram rows in range order.
func GetWordCountBuckets(db *gorm.DB) ([]models.WordCountBucket, error) {
	var buckets []models.WordCountBucket
	if err := db.Order("position ASC").Find(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}

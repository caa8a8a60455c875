package repository

import (
	"context"

	"github.com/princeprakhar/ratings-service/internal/models"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]models.Rating, error)
	AverageRating(ctx context.Context, productID int64) (float64, error)
	CountRatings(ctx context.Context, productID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// ListByProduct returns one page of ratings for a product in insertion order.
func (r *ratingRepository) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]models.Rating, error) {
	ratings := make([]models.Rating, 0, limit)
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageRating returns the mean rating value, or 0 when the product has none.
func (r *ratingRepository) AverageRating(ctx context.Context, productID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(rating_value), 0) AS average").
		Where("product_id = ?", productID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

func (r *ratingRepository) CountRatings(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

package models

import (
	"time"
)

// Rating is a single submitted review for a product. Rows are append-only.
type Rating struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   int64     `json:"productId" gorm:"not null;index:product_idx"`
	RatingValue float64   `json:"ratingValue" gorm:"type:double precision;not null"`
	RatingText  *string   `json:"ratingText" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;default:now()"`
}

func (Rating) TableName() string {
	return "ratings"
}

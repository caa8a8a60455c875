package utils

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinRatingValue = 1.0
	MaxRatingValue = 5.0
)

// RequestIDKey is the gin context key holding the current request ID.
const RequestIDKey = "request_id"

func IsValidRating(rating float64) bool {
	return !math.IsNaN(rating) && !math.IsInf(rating, 0) &&
		rating >= MinRatingValue && rating <= MaxRatingValue
}

// ParseID parses a base-10 signed 64-bit identifier, ignoring surrounding spaces.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

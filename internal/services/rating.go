package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/princeprakhar/ratings-service/internal/models"
	"github.com/princeprakhar/ratings-service/internal/repository"
	"github.com/princeprakhar/ratings-service/internal/utils"
	"github.com/princeprakhar/ratings-service/pkg/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	QueryTimeout    = 30 * time.Second
)

const (
	MsgPageSizeTooLarge   = "Page size cannot exceed %d"
	MsgInvalidPage        = "Page must be a positive integer"
	MsgInvalidRatingValue = "Rating value must be a number between 1 and 5"
	MsgInappropriateText  = "Rating contains inappropriate language"
	MsgNoProductIDs       = "No product IDs provided"
	MsgRatingAdded        = "Successfully added rating"
)

type RatingServiceOptions struct {
	DefaultPageSize int
	MaxPageSize     int
	QueryTimeout    time.Duration
	// AggregateConcurrency bounds how many products are aggregated at once.
	AggregateConcurrency int
	Filter               *ContentFilter
}

type RatingService struct {
	repo repository.RatingRepository
	opts RatingServiceOptions
}

func NewRatingService(repo repository.RatingRepository, opts RatingServiceOptions) *RatingService {
	if repo == nil {
		panic("rating repository cannot be nil")
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = DefaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = MaxPageSize
	}
	if opts.DefaultPageSize > opts.MaxPageSize {
		opts.DefaultPageSize = opts.MaxPageSize
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = QueryTimeout
	}
	if opts.AggregateConcurrency <= 0 {
		opts.AggregateConcurrency = 1
	}
	return &RatingService{repo: repo, opts: opts}
}

// decimalNumber excludes the hex, underscore and Inf/NaN forms ParseFloat
// would otherwise accept.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// RatingValue accepts a JSON number or a decimal numeric string. Anything else,
// including null, leaves Valid false instead of failing the whole body.
type RatingValue struct {
	Value float64
	Valid bool
}

func (v *RatingValue) UnmarshalJSON(data []byte) error {
	v.Value, v.Valid = 0, false

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch x := raw.(type) {
	case float64:
		v.Value, v.Valid = x, true
	case string:
		s := strings.TrimSpace(x)
		if !decimalNumber.MatchString(s) {
			break
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			v.Value, v.Valid = f, true
		}
	}
	return nil
}

type SubmitRatingRequest struct {
	RatingValue RatingValue `json:"rating_value"`
	RatingText  *string     `json:"rating_text"`
}

type ListRatingsRequest struct {
	ProductID int64
	Page      int
	PageSize  int
}

type Pagination struct {
	TotalRatings int64 `json:"totalRatings"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	PageSize     int   `json:"pageSize"`
}

type RatingListResponse struct {
	Ratings       []models.Rating `json:"ratings"`
	AverageRating float64         `json:"averageRating"`
	Pagination    Pagination      `json:"pagination"`
}

type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

type AverageRatingsResponse struct {
	AverageRatings RatingSummaries `json:"averageRatings"`
}

// ListRatings returns one page of ratings for a product together with the
// product's average and pagination metadata.
func (s *RatingService) ListRatings(ctx context.Context, req ListRatingsRequest) (*RatingListResponse, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.opts.DefaultPageSize
	}
	if pageSize > s.opts.MaxPageSize {
		return nil, utils.ValidationError(fmt.Sprintf(MsgPageSizeTooLarge, s.opts.MaxPageSize))
	}
	if utils.OffsetOverflows(page, pageSize) {
		return nil, utils.ValidationError(MsgInvalidPage)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	ratings, err := s.repo.ListByProduct(ctx, req.ProductID, pageSize, utils.Offset(page, pageSize))
	if err != nil {
		return nil, utils.InternalError(fmt.Errorf("list ratings for product %d: %w", req.ProductID, err))
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}

	avg, err := s.repo.AverageRating(ctx, req.ProductID)
	if err != nil {
		return nil, utils.InternalError(fmt.Errorf("average rating for product %d: %w", req.ProductID, err))
	}

	total, err := s.repo.CountRatings(ctx, req.ProductID)
	if err != nil {
		return nil, utils.InternalError(fmt.Errorf("count ratings for product %d: %w", req.ProductID, err))
	}

	return &RatingListResponse{
		Ratings:       ratings,
		AverageRating: avg,
		Pagination: Pagination{
			TotalRatings: total,
			TotalPages:   utils.TotalPages(total, pageSize),
			CurrentPage:  page,
			PageSize:     pageSize,
		},
	}, nil
}

// SubmitRating validates and stores a new rating. The product is not checked
// against any catalog.
func (s *RatingService) SubmitRating(ctx context.Context, productID int64, req SubmitRatingRequest) (*models.Rating, error) {
	if !req.RatingValue.Valid || !utils.IsValidRating(req.RatingValue.Value) {
		return nil, utils.ValidationError(MsgInvalidRatingValue)
	}
	if req.RatingText != nil && !s.opts.Filter.Allows(*req.RatingText) {
		return nil, utils.ValidationError(MsgInappropriateText)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	rating := &models.Rating{
		ProductID:   productID,
		RatingValue: req.RatingValue.Value,
		RatingText:  req.RatingText,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, utils.InternalError(fmt.Errorf("create rating for product %d: %w", productID, err))
	}

	logger.WithFields(logrus.Fields{
		"rating_id":  rating.ID,
		"product_id": productID,
	}).Debug("rating added")

	return rating, nil
}

// AverageRatings aggregates every parseable ID in a comma-separated list.
// Unparseable tokens are logged and skipped. A store failure for any ID fails
// the whole call.
func (s *RatingService) AverageRatings(ctx context.Context, rawIDs string) (*AverageRatingsResponse, error) {
	if strings.TrimSpace(rawIDs) == "" {
		return nil, utils.ValidationError(MsgNoProductIDs)
	}

	ids, invalid := ParseProductIDs(rawIDs)
	for _, token := range invalid {
		logger.WithFields(logrus.Fields{"token": token}).Warn("Invalid product ID, skipping")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	summaries := make([]RatingSummary, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.AggregateConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			avg, err := s.repo.AverageRating(gctx, id)
			if err != nil {
				return fmt.Errorf("average rating for product %d: %w", id, err)
			}
			count, err := s.repo.CountRatings(gctx, id)
			if err != nil {
				return fmt.Errorf("count ratings for product %d: %w", id, err)
			}
			summaries[i] = RatingSummary{AverageRating: avg, TotalReviews: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, utils.InternalError(err)
	}

	var result RatingSummaries
	for i, id := range ids {
		result.Set(id, summaries[i])
	}
	return &AverageRatingsResponse{AverageRatings: result}, nil
}

// ParseProductIDs splits a comma-separated list into unique IDs in first-seen
// order and the tokens that did not parse.
func ParseProductIDs(raw string) (ids []int64, invalid []string) {
	seen := make(map[int64]struct{})
	for _, token := range strings.Split(raw, ",") {
		id, ok := utils.ParseID(token)
		if !ok {
			invalid = append(invalid, token)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, invalid
}

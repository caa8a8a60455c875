package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/ratings-service/internal/services"
	"github.com/princeprakhar/ratings-service/internal/utils"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes mounts the rating endpoints. Both routes share the
// :product_id wildcard because gin requires one name per path position; on
// the average-rating route it holds a comma-separated list.
func (h *RatingHandler) RegisterRoutes(router gin.IRouter) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("/:product_id", h.GetProductRatings)
		ratings.POST("/:product_id", h.CreateRating)
		ratings.GET("/:product_id/average-rating", h.GetAverageRatings)
	}
}

// GetProductRatings handles GET /ratings/:product_id?page=&pageSize=
func (h *RatingHandler) GetProductRatings(c *gin.Context) {
	productID, ok := utils.ParseID(c.Param("product_id"))
	if !ok {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	params, err := utils.GetPaginationParams(c)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	resp, err := h.ratingService.ListRatings(c.Request.Context(), services.ListRatingsRequest{
		ProductID: productID,
		Page:      params.Page,
		PageSize:  params.PageSize,
	})
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendJSON(c, http.StatusOK, resp)
}

// CreateRating handles POST /ratings/:product_id
func (h *RatingHandler) CreateRating(c *gin.Context) {
	productID, ok := utils.ParseID(c.Param("product_id"))
	if !ok {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	var req services.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body")
		return
	}

	if _, err := h.ratingService.SubmitRating(c.Request.Context(), productID, req); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendMessage(c, http.StatusOK, services.MsgRatingAdded)
}

// GetAverageRatings handles GET /ratings/:product_id/average-rating where the
// parameter is a comma-separated list of IDs.
func (h *RatingHandler) GetAverageRatings(c *gin.Context) {
	resp, err := h.ratingService.AverageRatings(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendJSON(c, http.StatusOK, resp)
}

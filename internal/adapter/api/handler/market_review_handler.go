package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/errors"
	"chainmart/pkg/response"
)

type MarketReviewHandler struct {
	reviewUseCase *usecase.MarketReviewUseCase
}

func NewMarketReviewHandler(reviewUseCase *usecase.MarketReviewUseCase) *MarketReviewHandler {
	return &MarketReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reviewRequest struct {
	UserWallet string `json:"userWallet" validate:"required,len=42"`
	Stars      int    `json:"stars" validate:"required,min=1,max=10"`
	Review     string `json:"review" validate:"required,min=5"`
}

func (h *MarketReviewHandler) CreateReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), address, usecase.ReviewInput{
		UserWallet: req.UserWallet,
		Stars:      req.Stars,
		Review:     req.Review,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *MarketReviewHandler) UpdateReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), address, usecase.ReviewInput{
		UserWallet: req.UserWallet,
		Stars:      req.Stars,
		Review:     req.Review,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *MarketReviewHandler) ListReviews(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *MarketReviewHandler) GetReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	wallet := c.Param("userWallet")
	if address == "" || wallet == "" {
		return response.Error(c, errors.BadRequest("marketplace address and user wallet are required", nil))
	}

	review, err := h.reviewUseCase.GetReview(c.Request().Context(), address, wallet)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *MarketReviewHandler) DeleteReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	wallet := c.Param("userWallet")
	if address == "" || wallet == "" {
		return response.Error(c, errors.BadRequest("marketplace address and user wallet are required", nil))
	}

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), address, wallet); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "review deleted"})
}

func (h *MarketReviewHandler) PurgeMarketReviews(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	count, err := h.reviewUseCase.PurgeMarketReviews(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/errors"
	"chainmart/pkg/response"
)

type ProductReviewHandler struct {
	reviewUseCase *usecase.ProductReviewUseCase
}

func NewProductReviewHandler(reviewUseCase *usecase.ProductReviewUseCase) *ProductReviewHandler {
	return &ProductReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ProductReviewHandler) CreateReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), address, productID, usecase.ReviewInput{
		UserWallet: req.UserWallet,
		Stars:      req.Stars,
		Review:     req.Review,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ProductReviewHandler) UpdateReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), address, productID, usecase.ReviewInput{
		UserWallet: req.UserWallet,
		Stars:      req.Stars,
		Review:     req.Review,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ProductReviewHandler) ListReviews(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ProductReviewHandler) GetReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	wallet := c.Param("userWallet")
	if address == "" || wallet == "" {
		return response.Error(c, errors.BadRequest("marketplace address and user wallet are required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.GetReview(c.Request().Context(), address, productID, wallet)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ProductReviewHandler) DeleteReview(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	wallet := c.Param("userWallet")
	if address == "" || wallet == "" {
		return response.Error(c, errors.BadRequest("marketplace address and user wallet are required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), address, productID, wallet); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "review deleted"})
}

func (h *ProductReviewHandler) PurgeProductReviews(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	count, err := h.reviewUseCase.PurgeProductReviews(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

func (h *ProductReviewHandler) PurgeMarketProductReviews(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	count, err := h.reviewUseCase.PurgeMarketProductReviews(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/errors"
	"chainmart/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=100"`
	Description   string `json:"description" validate:"required,min=5"`
	MarketOwner   string `json:"marketOwner" validate:"required,len=42"`
	ProductID     int64  `json:"productId" validate:"required,gte=1"`
	ProductImage1 string `json:"productImage1,omitempty" validate:"omitempty,min=5"`
	ProductImage2 string `json:"productImage2,omitempty" validate:"omitempty,min=5"`
	ProductImage3 string `json:"productImage3,omitempty" validate:"omitempty,min=5"`
	Quantity      int64  `json:"quantity" validate:"required,gte=1"`
	Price         int64  `json:"price" validate:"required,gte=1"`
	OnSale        bool   `json:"onSale"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), address, usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		MarketOwner:   req.MarketOwner,
		ProductID:     req.ProductID,
		ProductImage1: req.ProductImage1,
		ProductImage2: req.ProductImage2,
		ProductImage3: req.ProductImage3,
		Quantity:      req.Quantity,
		Price:         req.Price,
		OnSale:        req.OnSale,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListMarketProducts(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	products, err := h.productUseCase.ListMarketProducts(c.Request().Context(), address, c.QueryParam("sort"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

type updateProductDataRequest struct {
	MarketOwner   string `json:"marketOwner" validate:"required,len=42"`
	Name          string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description   string `json:"description,omitempty" validate:"omitempty,min=5"`
	ProductImage1 string `json:"productImage1,omitempty" validate:"omitempty,min=5"`
	ProductImage2 string `json:"productImage2,omitempty" validate:"omitempty,min=5"`
	ProductImage3 string `json:"productImage3,omitempty" validate:"omitempty,min=5"`
	Quantity      *int64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Price         *int64 `json:"price,omitempty" validate:"omitempty,gte=1"`
	OnSale        *bool  `json:"onSale,omitempty"`
}

func (h *ProductHandler) UpdateProductData(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	var req updateProductDataRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProductData(c.Request().Context(), address, productID, usecase.UpdateProductDataInput{
		MarketOwner:   req.MarketOwner,
		Name:          req.Name,
		Description:   req.Description,
		ProductImage1: req.ProductImage1,
		ProductImage2: req.ProductImage2,
		ProductImage3: req.ProductImage3,
		Quantity:      req.Quantity,
		Price:         req.Price,
		OnSale:        req.OnSale,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProductRating(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.RecomputeRating(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

type deleteProductRequest struct {
	MarketOwner string `json:"marketOwner" validate:"required,len=42"`
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	var req deleteProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.DeleteProduct(c.Request().Context(), address, productID, req.MarketOwner)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) PurgeMarketProducts(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	count, err := h.productUseCase.PurgeMarketProducts(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

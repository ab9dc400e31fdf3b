package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/errors"
	"chainmart/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addCartItemRequest struct {
	UserWallet string `json:"userWallet" validate:"required,len=42"`
}

func (h *CartHandler) AddCartItem(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.cartUseCase.AddCartItem(c.Request().Context(), address, productID, req.UserWallet)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *CartHandler) ListCart(c echo.Context) error {
	wallet := c.Param("userWallet")
	if wallet == "" {
		return response.Error(c, errors.BadRequest("user wallet is required", nil))
	}

	entries, err := h.cartUseCase.ListCart(c.Request().Context(), wallet, c.QueryParam("sort"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

func (h *CartHandler) ListMarketCart(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	wallet := c.Param("userWallet")
	if address == "" || wallet == "" {
		return response.Error(c, errors.BadRequest("marketplace address and user wallet are required", nil))
	}

	entries, err := h.cartUseCase.ListMarketCart(c.Request().Context(), address, wallet)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

type removeCartItemRequest struct {
	MarketPlaceAddress string `json:"marketPlaceAddress" validate:"required,len=42"`
	ProductID          int64  `json:"productId" validate:"required,gte=1"`
}

func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	wallet := c.Param("userWallet")
	if wallet == "" {
		return response.Error(c, errors.BadRequest("user wallet is required", nil))
	}

	var req removeCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.cartUseCase.RemoveCartItem(c.Request().Context(), req.MarketPlaceAddress, req.ProductID, wallet); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "cart entry removed"})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	wallet := c.Param("userWallet")
	if wallet == "" {
		return response.Error(c, errors.BadRequest("user wallet is required", nil))
	}

	count, err := h.cartUseCase.ClearCart(c.Request().Context(), wallet)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

func (h *CartHandler) SyncMarketName(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	count, err := h.cartUseCase.SyncMarketName(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

func (h *CartHandler) SyncProductSnapshot(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	count, err := h.cartUseCase.SyncProductSnapshot(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

func (h *CartHandler) PurgeMarketCartItems(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	count, err := h.cartUseCase.PurgeMarketCartItems(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

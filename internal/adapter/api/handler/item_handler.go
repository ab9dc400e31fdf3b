package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/errors"
	"chainmart/pkg/response"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type recordItemRequest struct {
	ItemID            int64  `json:"itemId" validate:"required,gte=1"`
	ImageURI          string `json:"imageUri,omitempty" validate:"omitempty,min=5"`
	MarketName        string `json:"marketName" validate:"required,min=3,max=50"`
	ProductName       string `json:"productName" validate:"required,min=3,max=100"`
	Buyer             string `json:"buyer" validate:"required,len=42"`
	Owner             string `json:"owner" validate:"required,len=42"`
	Price             int64  `json:"price" validate:"required,gte=1"`
	Quantity          int64  `json:"quantity" validate:"required,gte=1"`
	CollateralAddress string `json:"collateralAddress,omitempty" validate:"omitempty,len=42"`
}

func (h *ItemHandler) RecordItem(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	var req recordItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.RecordItem(c.Request().Context(), address, productID, usecase.CreateItemInput{
		ItemID:            req.ItemID,
		ImageURI:          req.ImageURI,
		MarketName:        req.MarketName,
		ProductName:       req.ProductName,
		Buyer:             req.Buyer,
		Owner:             req.Owner,
		Price:             req.Price,
		Quantity:          req.Quantity,
		CollateralAddress: req.CollateralAddress,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	itemID, err := pathInt64(c, "itemId")
	if err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.GetItem(c.Request().Context(), address, itemID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) ListMarketItems(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	items, err := h.itemUseCase.ListMarketItems(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) ListProductItems(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	items, err := h.itemUseCase.ListProductItems(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) ListBoughtInMarket(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	buyer := c.Param("buyer")
	if address == "" || buyer == "" {
		return response.Error(c, errors.BadRequest("marketplace address and buyer are required", nil))
	}

	items, err := h.itemUseCase.ListBoughtInMarket(c.Request().Context(), address, buyer)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) ListOwnedInMarket(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	owner := c.Param("owner")
	if address == "" || owner == "" {
		return response.Error(c, errors.BadRequest("marketplace address and owner are required", nil))
	}

	items, err := h.itemUseCase.ListOwnedInMarket(c.Request().Context(), address, owner)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) ListBought(c echo.Context) error {
	buyer := c.Param("buyer")
	if buyer == "" {
		return response.Error(c, errors.BadRequest("buyer is required", nil))
	}

	items, err := h.itemUseCase.ListBought(c.Request().Context(), buyer)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) ListOwned(c echo.Context) error {
	owner := c.Param("owner")
	if owner == "" {
		return response.Error(c, errors.BadRequest("owner is required", nil))
	}

	items, err := h.itemUseCase.ListOwned(c.Request().Context(), owner)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) SyncMarketName(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	count, err := h.itemUseCase.SyncMarketName(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

func (h *ItemHandler) SyncProductName(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	productID, err := pathInt64(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	count, err := h.itemUseCase.SyncProductName(c.Request().Context(), address, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, response.CountResult{Count: count})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/errors"
	"chainmart/pkg/response"
)

type MarketHandler struct {
	marketUseCase *usecase.MarketUseCase
}

func NewMarketHandler(marketUseCase *usecase.MarketUseCase) *MarketHandler {
	return &MarketHandler{
		marketUseCase: marketUseCase,
	}
}

type createMarketRequest struct {
	Name               string `json:"name" validate:"required,min=3,max=50"`
	Description        string `json:"description" validate:"required,min=5"`
	MarketOwner        string `json:"marketOwner" validate:"required,len=42"`
	MarketLogo         string `json:"marketLogo,omitempty" validate:"omitempty,min=5"`
	MarketBackground   string `json:"marketBackground,omitempty" validate:"omitempty,min=5"`
	MarketTwitter      string `json:"marketTwitter,omitempty" validate:"omitempty,min=5"`
	MarketInsta        string `json:"marketInsta,omitempty" validate:"omitempty,min=5"`
	MarketFacebook     string `json:"marketFacebook,omitempty" validate:"omitempty,min=5"`
	MarketYoutube      string `json:"marketYoutube,omitempty" validate:"omitempty,min=5"`
	MarketMail         string `json:"marketMail" validate:"required,email"`
	MarketID           int64  `json:"marketId" validate:"required,gte=1"`
	MarketPlaceAddress string `json:"marketPlaceAddress" validate:"required,len=42"`
	MarketItemAddress  string `json:"marketItemAddress" validate:"required,len=42"`
}

func (h *MarketHandler) CreateMarket(c echo.Context) error {
	var req createMarketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	market, err := h.marketUseCase.CreateMarket(c.Request().Context(), usecase.CreateMarketInput{
		Name:               req.Name,
		Description:        req.Description,
		MarketOwner:        req.MarketOwner,
		MarketLogo:         req.MarketLogo,
		MarketBackground:   req.MarketBackground,
		MarketTwitter:      req.MarketTwitter,
		MarketInsta:        req.MarketInsta,
		MarketFacebook:     req.MarketFacebook,
		MarketYoutube:      req.MarketYoutube,
		MarketMail:         req.MarketMail,
		MarketID:           req.MarketID,
		MarketPlaceAddress: req.MarketPlaceAddress,
		MarketItemAddress:  req.MarketItemAddress,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, market)
}

func (h *MarketHandler) GetMarket(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	market, err := h.marketUseCase.GetMarket(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

func (h *MarketHandler) GetMarketByOwner(c echo.Context) error {
	owner := c.Param("ownerAddress")
	if owner == "" {
		return response.Error(c, errors.BadRequest("owner address is required", nil))
	}

	market, err := h.marketUseCase.GetMarketByOwner(c.Request().Context(), owner)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

func (h *MarketHandler) ListMarkets(c echo.Context) error {
	markets, err := h.marketUseCase.ListMarkets(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, markets)
}

type updateMarketDataRequest struct {
	MarketOwner      string `json:"marketOwner" validate:"required,len=42"`
	Name             string `json:"name,omitempty" validate:"omitempty,min=3,max=50"`
	Description      string `json:"description,omitempty" validate:"omitempty,min=5"`
	MarketLogo       string `json:"marketLogo,omitempty" validate:"omitempty,min=5"`
	MarketBackground string `json:"marketBackground,omitempty" validate:"omitempty,min=5"`
	MarketTwitter    string `json:"marketTwitter,omitempty" validate:"omitempty,min=5"`
	MarketInsta      string `json:"marketInsta,omitempty" validate:"omitempty,min=5"`
	MarketFacebook   string `json:"marketFacebook,omitempty" validate:"omitempty,min=5"`
	MarketYoutube    string `json:"marketYoutube,omitempty" validate:"omitempty,min=5"`
	MarketMail       string `json:"marketMail,omitempty" validate:"omitempty,email"`
}

func (h *MarketHandler) UpdateMarketData(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req updateMarketDataRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	market, err := h.marketUseCase.UpdateMarketData(c.Request().Context(), address, usecase.UpdateMarketDataInput{
		MarketOwner:      req.MarketOwner,
		Name:             req.Name,
		Description:      req.Description,
		MarketLogo:       req.MarketLogo,
		MarketBackground: req.MarketBackground,
		MarketTwitter:    req.MarketTwitter,
		MarketInsta:      req.MarketInsta,
		MarketFacebook:   req.MarketFacebook,
		MarketYoutube:    req.MarketYoutube,
		MarketMail:       req.MarketMail,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

type updateMarketOwnerRequest struct {
	CurrentOwner string `json:"currentOwner" validate:"required,len=42"`
	NewOwner     string `json:"newOwner" validate:"required,len=42"`
}

func (h *MarketHandler) UpdateMarketOwner(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req updateMarketOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	market, err := h.marketUseCase.UpdateMarketOwner(c.Request().Context(), address, req.CurrentOwner, req.NewOwner)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

func (h *MarketHandler) UpdateMarketRating(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	market, err := h.marketUseCase.RecomputeRating(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

type addTradedVolumeRequest struct {
	TradeVolume int64 `json:"tradeVolume" validate:"required,gte=1"`
}

func (h *MarketHandler) AddTradedVolume(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req addTradedVolumeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	market, err := h.marketUseCase.AddTradedVolume(c.Request().Context(), address, req.TradeVolume)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

type deleteMarketRequest struct {
	MarketOwner string `json:"marketOwner" validate:"required,len=42"`
}

func (h *MarketHandler) DeleteMarket(c echo.Context) error {
	address := c.Param("marketPlaceAddress")
	if address == "" {
		return response.Error(c, errors.BadRequest("marketplace address is required", nil))
	}

	var req deleteMarketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.marketUseCase.DeleteMarket(c.Request().Context(), address, req.MarketOwner)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

package handler

import (
	"chainmart/internal/usecase"
)

var (
	marketHandler        *MarketHandler
	productHandler       *ProductHandler
	itemHandler          *ItemHandler
	marketReviewHandler  *MarketReviewHandler
	productReviewHandler *ProductReviewHandler
	cartHandler          *CartHandler
	reportHandler        *ReportHandler
)

func Setup(
	marketUseCase *usecase.MarketUseCase,
	productUseCase *usecase.ProductUseCase,
	itemUseCase *usecase.ItemUseCase,
	marketReviewUseCase *usecase.MarketReviewUseCase,
	productReviewUseCase *usecase.ProductReviewUseCase,
	cartUseCase *usecase.CartUseCase,
	reportUseCase *usecase.ReportUseCase,
) {
	marketHandler = NewMarketHandler(marketUseCase)
	productHandler = NewProductHandler(productUseCase)
	itemHandler = NewItemHandler(itemUseCase)
	marketReviewHandler = NewMarketReviewHandler(marketReviewUseCase)
	productReviewHandler = NewProductReviewHandler(productReviewUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	reportHandler = NewReportHandler(reportUseCase)
}

func GetMarketHandler() *MarketHandler {
	return marketHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetMarketReviewHandler() *MarketReviewHandler {
	return marketReviewHandler
}

func GetProductReviewHandler() *ProductReviewHandler {
	return productReviewHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

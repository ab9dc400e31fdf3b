package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"chainmart/internal/domain/entity"
	"chainmart/pkg/errors"
)

// In-memory repositories backing the use case tests. They mirror the
// Firestore adapters' keying and error mapping, and hand out copies on
// reads the way DataTo decodes a fresh value per snapshot.

func clone[T any](v *T) *T {
	c := *v
	return &c
}

type fakeMarketRepo struct {
	markets map[string]*entity.Market
}

func newFakeMarketRepo() *fakeMarketRepo {
	return &fakeMarketRepo{markets: make(map[string]*entity.Market)}
}

func (r *fakeMarketRepo) Create(ctx context.Context, market *entity.Market) error {
	if _, ok := r.markets[market.MarketPlaceAddress]; ok {
		return errors.Conflict("marketplace already exists")
	}
	market.CreatedAt = time.Now()
	market.UpdatedAt = market.CreatedAt
	r.markets[market.MarketPlaceAddress] = market
	return nil
}

func (r *fakeMarketRepo) GetByAddress(ctx context.Context, address string) (*entity.Market, error) {
	market, ok := r.markets[address]
	if !ok {
		return nil, errors.NotFound("marketplace", nil)
	}
	return clone(market), nil
}

func (r *fakeMarketRepo) GetByOwner(ctx context.Context, owner string) (*entity.Market, error) {
	for _, market := range r.markets {
		if market.MarketOwner == owner {
			return clone(market), nil
		}
	}
	return nil, errors.NotFound("marketplace", nil)
}

func (r *fakeMarketRepo) GetByName(ctx context.Context, name string) (*entity.Market, error) {
	for _, market := range r.markets {
		if market.Name == name {
			return clone(market), nil
		}
	}
	return nil, errors.NotFound("marketplace", nil)
}

func (r *fakeMarketRepo) List(ctx context.Context, sortBy string) ([]*entity.Market, error) {
	markets := make([]*entity.Market, 0, len(r.markets))
	for _, market := range r.markets {
		markets = append(markets, clone(market))
	}
	switch sortBy {
	case "rating":
		sort.Slice(markets, func(i, j int) bool { return markets[i].MarketRating > markets[j].MarketRating })
	case "volume":
		sort.Slice(markets, func(i, j int) bool { return markets[i].TotalTradedInUSD < markets[j].TotalTradedInUSD })
	default:
		sort.Slice(markets, func(i, j int) bool { return markets[i].Name < markets[j].Name })
	}
	return markets, nil
}

// Update keeps the stored derived fields, like the adapter's
// field-scoped write.
func (r *fakeMarketRepo) Update(ctx context.Context, market *entity.Market) error {
	stored, ok := r.markets[market.MarketPlaceAddress]
	if !ok {
		return errors.NotFound("marketplace", nil)
	}
	next := *market
	next.MarketRating = stored.MarketRating
	next.TotalTradedInUSD = stored.TotalTradedInUSD
	next.CreatedAt = stored.CreatedAt
	next.UpdatedAt = time.Now()
	r.markets[market.MarketPlaceAddress] = &next
	return nil
}

func (r *fakeMarketRepo) SetRating(ctx context.Context, address string, rating float64) error {
	market, ok := r.markets[address]
	if !ok {
		return errors.NotFound("marketplace", nil)
	}
	market.MarketRating = rating
	return nil
}

func (r *fakeMarketRepo) IncrementTradedVolume(ctx context.Context, address string, amount int64) error {
	market, ok := r.markets[address]
	if !ok {
		return errors.NotFound("marketplace", nil)
	}
	market.TotalTradedInUSD += amount
	return nil
}

func (r *fakeMarketRepo) Delete(ctx context.Context, address string) error {
	if _, ok := r.markets[address]; !ok {
		return errors.NotFound("marketplace", nil)
	}
	delete(r.markets, address)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func productKey(address string, productID int64) string {
	return fmt.Sprintf("%s_%d", address, productID)
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	key := productKey(product.MarketPlaceAddress, product.ProductID)
	if _, ok := r.products[key]; ok {
		return errors.Conflict("product already exists")
	}
	r.products[key] = product
	return nil
}

func (r *fakeProductRepo) Get(ctx context.Context, address string, productID int64) (*entity.Product, error) {
	product, ok := r.products[productKey(address, productID)]
	if !ok {
		return nil, errors.NotFound("product", nil)
	}
	return clone(product), nil
}

func (r *fakeProductRepo) GetByName(ctx context.Context, address, name string) (*entity.Product, error) {
	for _, product := range r.products {
		if product.MarketPlaceAddress == address && product.Name == name {
			return clone(product), nil
		}
	}
	return nil, errors.NotFound("product", nil)
}

func (r *fakeProductRepo) ListByMarket(ctx context.Context, address, sortBy string) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, product := range r.products {
		if product.MarketPlaceAddress == address {
			products = append(products, clone(product))
		}
	}
	switch sortBy {
	case "rating":
		sort.Slice(products, func(i, j int) bool { return products[i].Rating < products[j].Rating })
	case "price":
		sort.Slice(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	default:
		sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
	return products, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	key := productKey(product.MarketPlaceAddress, product.ProductID)
	stored, ok := r.products[key]
	if !ok {
		return errors.NotFound("product", nil)
	}
	next := *product
	next.Rating = stored.Rating
	next.CreatedAt = stored.CreatedAt
	next.UpdatedAt = time.Now()
	r.products[key] = &next
	return nil
}

func (r *fakeProductRepo) SetRating(ctx context.Context, address string, productID int64, rating float64) error {
	product, ok := r.products[productKey(address, productID)]
	if !ok {
		return errors.NotFound("product", nil)
	}
	product.Rating = rating
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, address string, productID int64) error {
	key := productKey(address, productID)
	if _, ok := r.products[key]; !ok {
		return errors.NotFound("product", nil)
	}
	delete(r.products, key)
	return nil
}

func (r *fakeProductRepo) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	var count int64
	for key, product := range r.products {
		if product.MarketPlaceAddress == address {
			delete(r.products, key)
			count++
		}
	}
	return count, nil
}

type fakeItemRepo struct {
	items []*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	for _, existing := range r.items {
		if existing.MarketPlaceAddress == item.MarketPlaceAddress && existing.ItemID == item.ItemID {
			return errors.Conflict("item already exists")
		}
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeItemRepo) Get(ctx context.Context, address string, itemID int64) (*entity.Item, error) {
	for _, item := range r.items {
		if item.MarketPlaceAddress == address && item.ItemID == itemID {
			return clone(item), nil
		}
	}
	return nil, errors.NotFound("item", nil)
}

func (r *fakeItemRepo) filter(keep func(*entity.Item) bool) []*entity.Item {
	var items []*entity.Item
	for _, item := range r.items {
		if keep(item) {
			items = append(items, clone(item))
		}
	}
	return items
}

func (r *fakeItemRepo) ListByMarket(ctx context.Context, address string) ([]*entity.Item, error) {
	return r.filter(func(i *entity.Item) bool { return i.MarketPlaceAddress == address }), nil
}

func (r *fakeItemRepo) ListByProduct(ctx context.Context, address string, productID int64) ([]*entity.Item, error) {
	return r.filter(func(i *entity.Item) bool {
		return i.MarketPlaceAddress == address && i.ProductID == productID
	}), nil
}

func (r *fakeItemRepo) ListByBuyerInMarket(ctx context.Context, address, buyer string) ([]*entity.Item, error) {
	return r.filter(func(i *entity.Item) bool {
		return i.MarketPlaceAddress == address && i.Buyer == buyer
	}), nil
}

func (r *fakeItemRepo) ListByOwnerInMarket(ctx context.Context, address, owner string) ([]*entity.Item, error) {
	return r.filter(func(i *entity.Item) bool {
		return i.MarketPlaceAddress == address && i.Owner == owner
	}), nil
}

func (r *fakeItemRepo) ListByBuyer(ctx context.Context, buyer string) ([]*entity.Item, error) {
	return r.filter(func(i *entity.Item) bool { return i.Buyer == buyer }), nil
}

func (r *fakeItemRepo) ListByOwner(ctx context.Context, owner string) ([]*entity.Item, error) {
	return r.filter(func(i *entity.Item) bool { return i.Owner == owner }), nil
}

func (r *fakeItemRepo) HasMarketTrader(ctx context.Context, address, wallet string) (bool, error) {
	for _, item := range r.items {
		if item.MarketPlaceAddress == address && (item.Buyer == wallet || item.Owner == wallet) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeItemRepo) HasProductTrader(ctx context.Context, address string, productID int64, wallet string) (bool, error) {
	for _, item := range r.items {
		if item.MarketPlaceAddress == address && item.ProductID == productID &&
			(item.Buyer == wallet || item.Owner == wallet) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeItemRepo) SetMarketName(ctx context.Context, address, name string) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.MarketPlaceAddress == address {
			item.MarketName = name
			count++
		}
	}
	return count, nil
}

func (r *fakeItemRepo) SetProductName(ctx context.Context, address string, productID int64, name string) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.MarketPlaceAddress == address && item.ProductID == productID {
			item.ProductName = name
			count++
		}
	}
	return count, nil
}

type fakeMarketReviewRepo struct {
	reviews map[string]*entity.MarketReview
}

func newFakeMarketReviewRepo() *fakeMarketReviewRepo {
	return &fakeMarketReviewRepo{reviews: make(map[string]*entity.MarketReview)}
}

func marketReviewKey(address, wallet string) string {
	return fmt.Sprintf("%s_%s", address, wallet)
}

func (r *fakeMarketReviewRepo) Create(ctx context.Context, review *entity.MarketReview) error {
	key := marketReviewKey(review.MarketPlaceAddress, review.UserWallet)
	if _, ok := r.reviews[key]; ok {
		return errors.Conflict("review already exists")
	}
	r.reviews[key] = review
	return nil
}

func (r *fakeMarketReviewRepo) Get(ctx context.Context, address, wallet string) (*entity.MarketReview, error) {
	review, ok := r.reviews[marketReviewKey(address, wallet)]
	if !ok {
		return nil, errors.NotFound("review", nil)
	}
	return clone(review), nil
}

func (r *fakeMarketReviewRepo) ListByMarket(ctx context.Context, address string) ([]*entity.MarketReview, error) {
	var reviews []*entity.MarketReview
	for _, review := range r.reviews {
		if review.MarketPlaceAddress == address {
			reviews = append(reviews, clone(review))
		}
	}
	return reviews, nil
}

func (r *fakeMarketReviewRepo) Update(ctx context.Context, review *entity.MarketReview) error {
	key := marketReviewKey(review.MarketPlaceAddress, review.UserWallet)
	if _, ok := r.reviews[key]; !ok {
		return errors.NotFound("review", nil)
	}
	r.reviews[key] = review
	return nil
}

func (r *fakeMarketReviewRepo) Delete(ctx context.Context, address, wallet string) error {
	key := marketReviewKey(address, wallet)
	if _, ok := r.reviews[key]; !ok {
		return errors.NotFound("review", nil)
	}
	delete(r.reviews, key)
	return nil
}

func (r *fakeMarketReviewRepo) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	var count int64
	for key, review := range r.reviews {
		if review.MarketPlaceAddress == address {
			delete(r.reviews, key)
			count++
		}
	}
	return count, nil
}

type fakeProductReviewRepo struct {
	reviews map[string]*entity.ProductReview
}

func newFakeProductReviewRepo() *fakeProductReviewRepo {
	return &fakeProductReviewRepo{reviews: make(map[string]*entity.ProductReview)}
}

func productReviewKey(address string, productID int64, wallet string) string {
	return fmt.Sprintf("%s_%d_%s", address, productID, wallet)
}

func (r *fakeProductReviewRepo) Create(ctx context.Context, review *entity.ProductReview) error {
	key := productReviewKey(review.MarketPlaceAddress, review.ProductID, review.UserWallet)
	if _, ok := r.reviews[key]; ok {
		return errors.Conflict("review already exists")
	}
	r.reviews[key] = review
	return nil
}

func (r *fakeProductReviewRepo) Get(ctx context.Context, address string, productID int64, wallet string) (*entity.ProductReview, error) {
	review, ok := r.reviews[productReviewKey(address, productID, wallet)]
	if !ok {
		return nil, errors.NotFound("review", nil)
	}
	return clone(review), nil
}

func (r *fakeProductReviewRepo) ListByProduct(ctx context.Context, address string, productID int64) ([]*entity.ProductReview, error) {
	var reviews []*entity.ProductReview
	for _, review := range r.reviews {
		if review.MarketPlaceAddress == address && review.ProductID == productID {
			reviews = append(reviews, clone(review))
		}
	}
	return reviews, nil
}

func (r *fakeProductReviewRepo) Update(ctx context.Context, review *entity.ProductReview) error {
	key := productReviewKey(review.MarketPlaceAddress, review.ProductID, review.UserWallet)
	if _, ok := r.reviews[key]; !ok {
		return errors.NotFound("review", nil)
	}
	r.reviews[key] = review
	return nil
}

func (r *fakeProductReviewRepo) Delete(ctx context.Context, address string, productID int64, wallet string) error {
	key := productReviewKey(address, productID, wallet)
	if _, ok := r.reviews[key]; !ok {
		return errors.NotFound("review", nil)
	}
	delete(r.reviews, key)
	return nil
}

func (r *fakeProductReviewRepo) DeleteByProduct(ctx context.Context, address string, productID int64) (int64, error) {
	var count int64
	for key, review := range r.reviews {
		if review.MarketPlaceAddress == address && review.ProductID == productID {
			delete(r.reviews, key)
			count++
		}
	}
	return count, nil
}

func (r *fakeProductReviewRepo) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	var count int64
	for key, review := range r.reviews {
		if review.MarketPlaceAddress == address {
			delete(r.reviews, key)
			count++
		}
	}
	return count, nil
}

type fakeCartRepo struct {
	entries map[string]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{entries: make(map[string]*entity.CartItem)}
}

func cartKey(address string, productID int64, wallet string) string {
	return fmt.Sprintf("%s_%d_%s", address, productID, wallet)
}

func (r *fakeCartRepo) Create(ctx context.Context, entry *entity.CartItem) error {
	key := cartKey(entry.MarketPlaceAddress, entry.ProductID, entry.UserWallet)
	if _, ok := r.entries[key]; ok {
		return errors.Conflict("cart entry already exists")
	}
	r.entries[key] = entry
	return nil
}

func (r *fakeCartRepo) Get(ctx context.Context, address string, productID int64, wallet string) (*entity.CartItem, error) {
	entry, ok := r.entries[cartKey(address, productID, wallet)]
	if !ok {
		return nil, errors.NotFound("cart entry", nil)
	}
	return clone(entry), nil
}

func (r *fakeCartRepo) ListByWallet(ctx context.Context, wallet, sortBy string) ([]*entity.CartItem, error) {
	var entries []*entity.CartItem
	for _, entry := range r.entries {
		if entry.UserWallet == wallet {
			entries = append(entries, clone(entry))
		}
	}
	switch sortBy {
	case "price":
		sort.Slice(entries, func(i, j int) bool { return entries[i].Price < entries[j].Price })
	case "market":
		sort.Slice(entries, func(i, j int) bool { return entries[i].MarketName < entries[j].MarketName })
	}
	return entries, nil
}

func (r *fakeCartRepo) ListByMarketAndWallet(ctx context.Context, address, wallet string) ([]*entity.CartItem, error) {
	var entries []*entity.CartItem
	for _, entry := range r.entries {
		if entry.MarketPlaceAddress == address && entry.UserWallet == wallet {
			entries = append(entries, clone(entry))
		}
	}
	return entries, nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, address string, productID int64, wallet string) error {
	key := cartKey(address, productID, wallet)
	if _, ok := r.entries[key]; !ok {
		return errors.NotFound("cart entry", nil)
	}
	delete(r.entries, key)
	return nil
}

func (r *fakeCartRepo) DeleteByWallet(ctx context.Context, wallet string) (int64, error) {
	var count int64
	for key, entry := range r.entries {
		if entry.UserWallet == wallet {
			delete(r.entries, key)
			count++
		}
	}
	return count, nil
}

func (r *fakeCartRepo) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	var count int64
	for key, entry := range r.entries {
		if entry.MarketPlaceAddress == address {
			delete(r.entries, key)
			count++
		}
	}
	return count, nil
}

func (r *fakeCartRepo) DeleteByProduct(ctx context.Context, address string, productID int64) (int64, error) {
	var count int64
	for key, entry := range r.entries {
		if entry.MarketPlaceAddress == address && entry.ProductID == productID {
			delete(r.entries, key)
			count++
		}
	}
	return count, nil
}

func (r *fakeCartRepo) SetMarketName(ctx context.Context, address, name string) (int64, error) {
	var count int64
	for _, entry := range r.entries {
		if entry.MarketPlaceAddress == address {
			entry.MarketName = name
			count++
		}
	}
	return count, nil
}

func (r *fakeCartRepo) SetProductSnapshot(ctx context.Context, address string, productID int64, name, imageURI string, price int64) (int64, error) {
	var count int64
	for _, entry := range r.entries {
		if entry.MarketPlaceAddress == address && entry.ProductID == productID {
			entry.ProductName = name
			entry.ImageURI = imageURI
			entry.Price = price
			count++
		}
	}
	return count, nil
}

type fakeReportRepo struct {
	reports []*entity.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{}
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	report.ID = fmt.Sprintf("report-%d", len(r.reports)+1)
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) GetByIssue(ctx context.Context, issue string) (*entity.Report, error) {
	for _, report := range r.reports {
		if report.Issue == issue {
			return clone(report), nil
		}
	}
	return nil, errors.NotFound("report", nil)
}

func (r *fakeReportRepo) List(ctx context.Context) ([]*entity.Report, error) {
	reports := make([]*entity.Report, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, clone(report))
	}
	return reports, nil
}

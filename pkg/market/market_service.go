package market

import (
	"context"
	"fmt"
	"math"

	"gogiieum/domain"
	"gogiieum/pkg/catalog"
	"gogiieum/pkg/point"
)

type (
	MarketService interface {
		Quote(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutQuote, error)
		Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	}

	marketService struct {
		catalogRepository catalog.CatalogRepository
		pointService      point.PointService
	}
)

func NewMarketService(catalogRepository catalog.CatalogRepository, pointService point.PointService) MarketService {
	return &marketService{
		catalogRepository: catalogRepository,
		pointService:      pointService,
	}
}

// CalculateTotal runs the checkout math. The min-clamp chain guarantees the
// redeemed amount never exceeds the 60% cap or the balance, so the final
// price cannot go negative.
func CalculateTotal(unitPrice, quantity int, usePoints bool, requestedPoints, balance int) (total, maxRedeemable, redeemed, finalPrice int) {
	total = unitPrice * quantity
	maxRedeemable = int(math.Floor(float64(total) * domain.MaxPointShare))

	if usePoints {
		redeemed = requestedPoints
		if redeemed > maxRedeemable {
			redeemed = maxRedeemable
		}
		if redeemed > balance {
			redeemed = balance
		}
		if redeemed < 0 {
			redeemed = 0
		}
	}

	finalPrice = total - redeemed
	return total, maxRedeemable, redeemed, finalPrice
}

func (s *marketService) Quote(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutQuote, error) {
	product, err := s.catalogRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	balance, err := s.pointService.GetBalance(ctx)
	if err != nil {
		return nil, err
	}

	total, maxRedeemable, redeemed, finalPrice := CalculateTotal(
		product.Price, req.Quantity, req.UsePoints, req.RequestedPoints, balance,
	)
	return &domain.CheckoutQuote{
		ProductID:      product.ID,
		ProductName:    product.Name,
		UnitPrice:      product.Price,
		Quantity:       req.Quantity,
		Total:          total,
		MaxRedeemable:  maxRedeemable,
		RedeemedPoints: redeemed,
		FinalPrice:     finalPrice,
		Balance:        balance,
	}, nil
}

// Checkout applies a quote: the clamped redeemed amount is deducted from the
// balance. Nothing else is recorded; there is no order store.
func (s *marketService) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	quote, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	balance := quote.Balance
	if quote.RedeemedPoints > 0 {
		description := fmt.Sprintf("%s %d개 구매 시 %dP 사용", quote.ProductName, quote.Quantity, quote.RedeemedPoints)
		balance, err = s.pointService.Redeem(ctx, quote.RedeemedPoints, "Market", description)
		if err != nil {
			return nil, err
		}
	}

	return &domain.CheckoutResponse{
		Quote:   *quote,
		Balance: balance,
	}, nil
}

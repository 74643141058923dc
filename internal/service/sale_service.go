package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"pizzeria-pos/internal/domain/dao"
	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/events"
	"pizzeria-pos/internal/repository"
)

// CatalogLookup is the read the sale workflow needs from the catalog:
// current price, or the zero sentinel for a missing product.
type CatalogLookup interface {
	GetPrice(ctx context.Context, productID int) (float64, error)
}

type SaleServiceInterface interface {
	CreateSale(ctx context.Context, req dto.SaleRequest) (dto.Receipt, error)
	History(ctx context.Context) ([]dto.OrderView, error)
	GetOrder(ctx context.Context, id int) (dto.OrderView, error)
	DeleteOrder(ctx context.Context, id int) error
}

type SaleService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	catalog   CatalogLookup
	publisher events.Publisher // nil when no broker is configured
	lg        zerolog.Logger
}

func NewSaleService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	catalog CatalogLookup,
	publisher events.Publisher,
	lg zerolog.Logger,
) SaleServiceInterface {
	return &SaleService{
		orders:    orders,
		customers: customers,
		catalog:   catalog,
		publisher: publisher,
		lg:        lg,
	}
}

// CreateSale runs the whole sale: price every line against the live
// catalog, validate the payment, resolve the customer, persist the
// aggregate atomically and hand back the receipt. Validation failures
// short-circuit before anything is written.
func (s *SaleService) CreateSale(ctx context.Context, req dto.SaleRequest) (dto.Receipt, error) {
	if err := validate.Struct(req); err != nil {
		return dto.Receipt{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	total := 0.0
	items := make([]dao.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		price, err := s.catalog.GetPrice(ctx, line.ProductID)
		if err != nil {
			return dto.Receipt{}, fmt.Errorf("failed to resolve price: %w", err)
		}
		if price == 0 {
			return dto.Receipt{}, &InvalidProductError{ProductID: line.ProductID}
		}

		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		subtotal := price * float64(qty)
		total += subtotal

		items = append(items, dao.OrderItem{
			ProductID: line.ProductID,
			Quantity:  qty,
			Subtotal:  subtotal,
		})
	}

	if req.AmountTendered < total {
		return dto.Receipt{}, fmt.Errorf("%w: tendered %.2f, total %.2f",
			ErrInsufficientPayment, req.AmountTendered, total)
	}
	change := req.AmountTendered - total

	customer, err := s.customers.FindOrCreate(ctx, dao.Customer{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	})
	if err != nil {
		return dto.Receipt{}, fmt.Errorf("failed to resolve customer: %w", err)
	}

	order := dao.Order{
		CustomerID: customer.ID,
		Total:      total,
		Paid:       req.AmountTendered,
		Change:     change,
		Status:     dao.StatusPaid,
	}
	saved, err := s.orders.SaveOrder(ctx, order, items)
	if err != nil {
		return dto.Receipt{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishSale(ctx, saved, customer.Name)

	s.lg.Info().
		Int("order_id", saved.ID).
		Float64("total", total).
		Float64("change", change).
		Msg("sale_completed")

	return dto.NewReceipt(saved, customer.Name), nil
}

// publishSale notifies the kitchen. The aggregate is already durable, so a
// broker failure only logs: the sale must not fail after commit.
func (s *SaleService) publishSale(ctx context.Context, order dao.Order, customerName string) {
	if s.publisher == nil {
		return
	}

	lines := make([]events.SaleLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, events.SaleLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ev := events.SaleEvent{
		OrderID:      order.ID,
		CustomerName: customerName,
		Total:        order.Total,
		Items:        lines,
	}
	if err := s.publisher.PublishSaleCompleted(pctx, ev); err != nil {
		s.lg.Error().Err(err).Int("order_id", order.ID).Msg("sale_event_publish_failed")
	}
}

func (s *SaleService) History(ctx context.Context) ([]dto.OrderView, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	return dto.ProjectOrders(orders), nil
}

func (s *SaleService) GetOrder(ctx context.Context, id int) (dto.OrderView, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return dto.OrderView{}, err
	}
	return dto.ProjectOrder(order), nil
}

func (s *SaleService) DeleteOrder(ctx context.Context, id int) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.lg.Info().Int("order_id", id).Msg("order_deleted")
	return nil
}

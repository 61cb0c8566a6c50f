package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// SequenceCollision is the stable code surfaced when order-number generation
// keeps colliding after bounded retries.
const SequenceCollision = "SEQUENCE_COLLISION"

// InvalidDiscount is the stable code for a checkout failed by a rejected
// discount code. Checkout never silently drops an invalid code.
const InvalidDiscount = "INVALID_DISCOUNT"

// maxOrderNumberAttempts bounds the generate-and-insert retry loop.
const maxOrderNumberAttempts = 3

// CartStore is the slice of the cart repository the orchestrator needs.
type CartStore interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	DeleteCart(ctx context.Context, userID string) error
}

// OrderEventPublisher emits order lifecycle events. Publishing is
// best-effort; a failure never fails the request.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
	PublishStatusChanged(ctx context.Context, event models.OrderStatusChangedEvent) error
}

// allowedTransitions is the order lifecycle: pending → confirmed → shipped →
// delivered, with cancellation possible until the order ships.
var allowedTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:   {models.OrderStatusDelivered},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// OrderService sequences checkout and manages the order lifecycle.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, req *models.PlaceOrderRequest) (*models.Order, *ServiceError)
	GetUserOrders(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, *ServiceError)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context, filter repository.OrderFilter, page, limit int) ([]models.Order, int64, *ServiceError)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uuid.UUID) *ServiceError
}

type orderServiceImpl struct {
	orders    repository.OrderRepository
	carts     CartStore
	catalog   CatalogService
	shipping  ShippingService
	discounts DiscountService
	sequence  *OrderNumberSequence
	publisher OrderEventPublisher
	clock     Clock
	taxRate   float64
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orders repository.OrderRepository,
	carts CartStore,
	catalog CatalogService,
	shipping ShippingService,
	discounts DiscountService,
	sequence *OrderNumberSequence,
	publisher OrderEventPublisher,
	clock Clock,
	taxRate float64,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orders:    orders,
		carts:     carts,
		catalog:   catalog,
		shipping:  shipping,
		discounts: discounts,
		sequence:  sequence,
		publisher: publisher,
		clock:     clock,
		taxRate:   taxRate,
		logger:    logger,
	}
}

// PlaceOrder runs the full checkout: cart → pricing → order persistence →
// cart clearing. The order row and its items are written in one transaction;
// a discount redemption that cannot be followed by a successful insert is
// released again.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID string, req *models.PlaceOrderRequest) (*models.Order, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}
	if cart == nil || len(cart.Lines) == 0 {
		return nil, &ServiceError{StatusCode: 400, Code: EmptyCart, Message: "Cart is empty"}
	}

	lines := make([]ResolvedLine, 0, len(cart.Lines))
	for _, cartLine := range cart.Lines {
		resolved, svcErr := s.catalog.ResolveLine(ctx, cartLine)
		if svcErr != nil {
			return nil, svcErr
		}
		lines = append(lines, *resolved)
	}
	subtotal := Subtotal(lines)

	rule, svcErr := s.shipping.CheckPincode(ctx, req.ShippingAddress.Pincode)
	if svcErr != nil {
		return nil, svcErr
	}
	if req.PaymentMethod == "cod" && !rule.CodAvailable {
		return nil, &ServiceError{StatusCode: 400, Message: "Cash on delivery is not available for this pincode"}
	}

	var discountAmount float64
	var discountCode *string
	if req.DiscountCode != nil && strings.TrimSpace(*req.DiscountCode) != "" {
		validation, svcErr := s.discounts.Validate(ctx, *req.DiscountCode, subtotal)
		if svcErr != nil {
			return nil, svcErr
		}
		if !validation.Valid {
			return nil, &ServiceError{StatusCode: 400, Code: InvalidDiscount, Message: validation.Message}
		}
		if svcErr := s.discounts.Redeem(ctx, validation.Code); svcErr != nil {
			return nil, svcErr
		}
		discountAmount = validation.DiscountAmount
		discountCode = &validation.Code
	}

	breakdown, svcErr := ComputeBreakdown(lines, rule.ShippingCharge, discountAmount, s.taxRate)
	if svcErr != nil {
		s.releaseDiscount(ctx, discountCode)
		return nil, svcErr
	}

	billing := req.ShippingAddress
	if req.BillingAddress != nil {
		billing = *req.BillingAddress
	}
	shippingJSON, _ := json.Marshal(req.ShippingAddress)
	billingJSON, _ := json.Marshal(billing)

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			VariantID:   line.VariantID,
			ProductName: line.ProductName,
			VariantName: line.VariantName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.UnitPrice * float64(line.Quantity),
		})
	}

	var order *models.Order
	for attempt := 1; ; attempt++ {
		orderNumber, err := s.sequence.Next(ctx, s.clock.Now())
		if err != nil {
			s.releaseDiscount(ctx, discountCode)
			s.logger.Error("Order number generation failed", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
		}

		order = &models.Order{
			OrderNumber:    orderNumber,
			UserID:         userID,
			Status:         models.OrderStatusPending,
			Subtotal:       breakdown.Subtotal,
			DiscountAmount: breakdown.DiscountAmount,
			DiscountCode:   discountCode,
			ShippingCharge: breakdown.ShippingCharge,
			TaxAmount:      breakdown.TaxAmount,
			TotalAmount:    breakdown.TotalAmount,
			PaymentMethod:  req.PaymentMethod,
			PaymentStatus:  models.PaymentStatusPending,
			ShippingAddr:   string(shippingJSON),
			BillingAddr:    string(billingJSON),
			Pincode:        req.ShippingAddress.Pincode,
			CustomerName:   strings.TrimSpace(req.CustomerName),
			CustomerEmail:  strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
			CustomerPhone:  strings.TrimSpace(req.CustomerPhone),
			Items:          items,
		}

		err = s.orders.Create(ctx, order)
		if err == nil {
			break
		}
		if repository.IsUniqueViolation(err) && attempt < maxOrderNumberAttempts {
			s.logger.Warn("Order number collision, retrying",
				zap.String("order_number", orderNumber),
				zap.Int("attempt", attempt),
			)
			continue
		}

		s.releaseDiscount(ctx, discountCode)
		if repository.IsUniqueViolation(err) {
			s.logger.Error("Order number collisions exhausted retries",
				zap.String("order_number", orderNumber),
				zap.String("user_id", userID),
			)
			return nil, &ServiceError{StatusCode: 500, Code: SequenceCollision, Message: "Failed to allocate an order number"}
		}
		s.logger.Error("Failed to persist order", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	// The cart lives in Redis and cannot join the Postgres transaction. A
	// failed clear leaves the order intact; log with enough context for
	// manual reconciliation.
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		if err = s.carts.DeleteCart(ctx, userID); err != nil {
			s.logger.Error("Cart clear failed after order creation",
				zap.String("order_number", order.OrderNumber),
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	s.publishPlaced(ctx, order)

	s.logger.Info("Order placed",
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", userID),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

// GetUserOrders retrieves a user's orders with pagination.
func (s *orderServiceImpl) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orders.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, total, nil
}

// GetOrder retrieves an order by id.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	return order, nil
}

// GetOrderByNumber retrieves an order by its user-facing number.
func (s *orderServiceImpl) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	return order, nil
}

// ListOrders retrieves orders matching the filter (admin).
func (s *orderServiceImpl) ListOrders(ctx context.Context, filter repository.OrderFilter, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orders.FindAll(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list orders"}
	}
	return orders, total, nil
}

// UpdateStatus applies lifecycle and payment-status transitions. Cancelling
// an order returns its discount redemption.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}

	statusChanged := false
	if req.Status != nil && *req.Status != order.Status {
		if !transitionAllowed(order.Status, *req.Status) {
			return nil, &ServiceError{
				StatusCode: 400,
				Message:    "Cannot transition order from '" + order.Status + "' to '" + *req.Status + "'",
			}
		}
		order.Status = *req.Status
		statusChanged = true
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}

	if err := s.orders.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	if statusChanged {
		if order.Status == models.OrderStatusCancelled {
			s.releaseDiscount(ctx, order.DiscountCode)
		}
		if s.publisher != nil {
			event := models.OrderStatusChangedEvent{
				Event:       "order.status_changed",
				OrderID:     order.ID.String(),
				OrderNumber: order.OrderNumber,
				Status:      order.Status,
				Timestamp:   s.clock.Now(),
			}
			if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
				s.logger.Error("Failed to publish status change", zap.String("order_number", order.OrderNumber), zap.Error(err))
			}
		}
		s.logger.Info("Order status changed",
			zap.String("order_number", order.OrderNumber),
			zap.String("status", order.Status),
		)
	}

	return order, nil
}

// DeleteOrder removes an order; only pending or cancelled orders qualify.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id uuid.UUID) *ServiceError {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusCancelled {
		return &ServiceError{
			StatusCode: 400,
			Message:    "Cannot delete order with status '" + order.Status + "'. Only pending or cancelled orders can be deleted.",
		}
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete order", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete order"}
	}
	return nil
}

func (s *orderServiceImpl) releaseDiscount(ctx context.Context, code *string) {
	if code != nil {
		s.discounts.Release(ctx, *code)
	}
}

func (s *orderServiceImpl) publishPlaced(ctx context.Context, order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := models.OrderPlacedEvent{
		Event:        "order.placed",
		OrderID:      order.ID.String(),
		OrderNumber:  order.OrderNumber,
		UserID:       order.UserID,
		TotalAmount:  order.TotalAmount,
		DiscountCode: order.DiscountCode,
		Timestamp:    s.clock.Now(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish order.placed", zap.String("order_number", order.OrderNumber), zap.Error(err))
	}
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/middleware"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// OrderController handles HTTP requests for checkout and order management.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PlaceOrder handles POST /orders (checkout).
func (oc *OrderController) PlaceOrder(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	var req models.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.PlaceOrder(ctx.Request.Context(), userID, &req)
	if svcErr != nil {
		resp := gin.H{"error": svcErr.Message}
		if svcErr.Code != "" {
			resp["code"] = svcErr.Code
		}
		ctx.JSON(svcErr.StatusCode, resp)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetMyOrders handles GET /orders.
func (oc *OrderController) GetMyOrders(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)
	page, limit := parsePaginationParams(ctx)

	orders, total, svcErr := oc.orderService.GetUserOrders(ctx.Request.Context(), userID, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"meta":   paginationMeta(page, limit, total),
	})
}

// GetOrder handles GET /orders/:id. Accepts either an order UUID or an
// order number (ORD-YYYY-NNNNN).
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)
	param := ctx.Param("id")

	var order *models.Order
	var svcErr *services.ServiceError
	if id, err := uuid.Parse(param); err == nil {
		order, svcErr = oc.orderService.GetOrder(ctx.Request.Context(), id)
	} else {
		order, svcErr = oc.orderService.GetOrderByNumber(ctx.Request.Context(), param)
	}
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	// Customers can only see their own orders.
	if order.UserID != userID && ctx.GetString("role") != "admin" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// ListOrders handles GET /admin/orders with status/payment filters.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	filter := repository.OrderFilter{
		UserID:        ctx.Query("user_id"),
		Status:        ctx.Query("status"),
		PaymentStatus: ctx.Query("payment_status"),
	}

	orders, total, svcErr := oc.orderService.ListOrders(ctx.Request.Context(), filter, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"meta":   paginationMeta(page, limit, total),
	})
}

// UpdateStatus handles PATCH /admin/orders/:id.
func (oc *OrderController) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Status == nil && req.PaymentStatus == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	order, svcErr := oc.orderService.UpdateStatus(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// DeleteOrder handles DELETE /admin/orders/:id.
func (oc *OrderController) DeleteOrder(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if svcErr := oc.orderService.DeleteOrder(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

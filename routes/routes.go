package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/controllers"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/middleware"
)

// RegisterRoutes sets up all storefront and admin routes.
func RegisterRoutes(
	r *gin.Engine,
	pc *controllers.ProductController,
	cc *controllers.CartController,
	dc *controllers.DiscountController,
	sc *controllers.ShippingController,
	oc *controllers.OrderController,
	catc *controllers.CategoryController,
	hc *controllers.HomepageController,
) {
	// Public: catalog browsing, homepage content, and serviceability checks
	r.GET("/products", pc.ListProducts)
	r.GET("/products/:idOrSlug", pc.GetProduct)
	r.GET("/categories", catc.ListCategories)
	r.GET("/categories/:idOrSlug", catc.GetCategory)
	r.GET("/homepage/slides", hc.ListSlides)
	r.GET("/shipping/pincode/:pincode", sc.CheckPincode)

	// Protected: cart, checkout, and order history
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/cart", cc.GetCart)
		authed.POST("/cart/lines", cc.AddLine)
		authed.PATCH("/cart/lines", cc.UpdateQuantity)
		authed.DELETE("/cart/lines/:product_id", cc.RemoveLine)
		authed.DELETE("/cart", cc.ClearCart)

		authed.POST("/discounts/validate", dc.ValidateDiscount)

		authed.POST("/orders", oc.PlaceOrder)
		authed.GET("/orders", oc.GetMyOrders)
		authed.GET("/orders/:id", oc.GetOrder)
	}

	// Admin: catalog, discount, shipping rule, and order management
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		admin.POST("/products", pc.CreateProduct)
		admin.POST("/products/:id/variants", pc.CreateVariant)

		admin.POST("/categories", catc.CreateCategory)
		admin.DELETE("/categories/:idOrSlug", catc.DeactivateCategory)

		admin.POST("/homepage/slides", hc.CreateSlide)
		admin.DELETE("/homepage/slides/:id", hc.DeleteSlide)

		admin.POST("/discounts", dc.CreateDiscount)
		admin.GET("/discounts", dc.ListDiscounts)
		admin.GET("/discounts/:code", dc.GetDiscount)
		admin.DELETE("/discounts/:code", dc.DeactivateDiscount)

		admin.POST("/shipping/rules", sc.CreateRule)
		admin.GET("/shipping/rules", sc.ListRules)
		admin.DELETE("/shipping/rules/:id", sc.DeactivateRule)

		admin.GET("/orders", oc.ListOrders)
		admin.PATCH("/orders/:id", oc.UpdateStatus)
		admin.DELETE("/orders/:id", oc.DeleteOrder)
	}
}

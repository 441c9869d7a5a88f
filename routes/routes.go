package routes

import (
	"net/http"

	"milkbites/addresses"
	"milkbites/admin"
	"milkbites/auth"
	"milkbites/cart"
	"milkbites/discounts"
	"milkbites/middleware"
	"milkbites/orders"
	"milkbites/products"
	"milkbites/ratelim"
	"milkbites/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
	router.ServeFiles("/static/paymentproof/*filepath", http.Dir("static/paymentproof"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/admin/login", ratelim.RateLimit(auth.AdminLogin))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.GET("/api/auth/me", middleware.Authenticate(auth.GetMe))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productid", products.GetProduct)
	router.POST("/api/products", middleware.AdminOnly(products.CreateProduct))
	router.PUT("/api/products/:productid", middleware.AdminOnly(products.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.AdminOnly(products.DeleteProduct))
	router.POST("/api/products/:productid/image", middleware.AdminOnly(products.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart/add", middleware.Authenticate(cart.AddToCart))
	router.DELETE("/api/cart/item/:productid", middleware.Authenticate(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/api/orders", ratelim.RateLimit(middleware.Authenticate(orders.CreateOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(orders.GetOrder))
	router.POST("/api/orders/:orderid/payment-proof", ratelim.RateLimit(middleware.Authenticate(orders.UploadPaymentProof)))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.PrintInvoice))
}

func AddAddressRoutes(router *httprouter.Router) {
	router.GET("/api/addresses", middleware.Authenticate(addresses.GetAddresses))
	router.POST("/api/addresses", middleware.Authenticate(addresses.CreateAddress))
	router.PUT("/api/addresses/:addressid", middleware.Authenticate(addresses.UpdateAddress))
	router.DELETE("/api/addresses/:addressid", middleware.Authenticate(addresses.DeleteAddress))
}

func AddDiscountRoutes(router *httprouter.Router) {
	router.POST("/api/discounts/validate", ratelim.RateLimit(middleware.Authenticate(discounts.ValidateDiscount)))
	router.GET("/api/admin/discounts", middleware.AdminOnly(discounts.GetDiscounts))
	router.POST("/api/admin/discounts", middleware.AdminOnly(discounts.CreateDiscount))
	router.PUT("/api/admin/discounts/:discountid", middleware.AdminOnly(discounts.UpdateDiscount))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.POST("/api/admin/init", ratelim.RateLimit(admin.InitAdmin))
	router.GET("/api/admin/orders", middleware.AdminOnly(admin.GetAllOrders))
	router.PUT("/api/admin/orders/:orderid/status", middleware.AdminOnly(admin.UpdateOrderStatus))
	router.GET("/api/admin/orders/export", middleware.AdminOnly(admin.ExportOrdersCSV))
	router.GET("/api/admin/orders/live", middleware.AdminOnly(orders.HandleOrderEventsWS))
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings/shipping", settings.GetShippingSettings)
	router.PUT("/api/settings/shipping", middleware.AdminOnly(settings.UpdateShippingSettings))
}

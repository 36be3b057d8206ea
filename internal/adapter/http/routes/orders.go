package routes

import (
	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/handlers"
	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/middleware"
	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders       = "/orders"
	PathPublicOrders = "/public/orders"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST("/auth/token", authHandler.IssueToken)
}

func addOrderRoutes(rg *gin.RouterGroup, staff gin.HandlerFunc, orderHandler *handlers.OrderHandler, shareHandler *handlers.ShareHandler) {
	orders := rg.Group(PathOrders, staff)
	{
		orders.POST("", middleware.RequireCapability(entities.CapabilityManageOrders), orderHandler.CreateOrder)
		orders.GET("/:number", middleware.RequireCapability(entities.CapabilityViewOrders), orderHandler.GetOrder)
		orders.PATCH("/:number/status", middleware.RequireCapability(entities.CapabilityManageOrders), orderHandler.UpdateStatus)
		orders.POST("/:number/items", middleware.RequireCapability(entities.CapabilityManageOrders), orderHandler.AddLineItem)
		orders.DELETE("/:number/items/:kind/:index", middleware.RequireCapability(entities.CapabilityManageOrders), orderHandler.RemoveLineItem)
		orders.PATCH("/:number/customer", middleware.RequireCapability(entities.CapabilityManageCustomers), orderHandler.UpdateCustomer)
		orders.PATCH("/:number/device", middleware.RequireCapability(entities.CapabilityManageCustomers), orderHandler.UpdateDevice)
		orders.POST("/:number/transactions", middleware.RequireCapability(entities.CapabilityManagePayments), orderHandler.AddTransaction)
		orders.GET("/:number/transactions", middleware.RequireCapability(entities.CapabilityViewOrders), orderHandler.ListTransactions)

		orders.POST("/:number/share", middleware.RequireCapability(entities.CapabilityManageOrders), shareHandler.CreateShare)
		orders.GET("/:number/share", middleware.RequireCapability(entities.CapabilityViewOrders), shareHandler.ListShares)
		orders.DELETE("/:number/share/:token", middleware.RequireCapability(entities.CapabilityManageOrders), shareHandler.RevokeShare)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, publicHandler *handlers.PublicHandler) {
	public := rg.Group(PathPublicOrders)
	{
		public.GET("/:token", publicHandler.GetOrder)
		public.POST("/:token/approve", publicHandler.Approve)
		public.POST("/:token/reject", publicHandler.Reject)
		public.POST("/:token/comments", publicHandler.AddComment)
		public.POST("/:token/rating", publicHandler.Rate)
		public.POST("/:token/payments", publicHandler.Pay)
	}
}

package routes

import (
	"malharia_pdv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/pedidos"
	PathAnnouncements = "/avisos"
	PathArchived      = "/arquivados"
	PathReceipts      = "/recibos"
)

func addPdvRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	archiveHandler *handlers.ArchiveHandler,
	announcementHandler *handlers.AnnouncementHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Register)
		orders.GET("", orderHandler.List)
		orders.GET("/painel", orderHandler.Dashboard)
		orders.PATCH("/status", orderHandler.UpdateStatus)
		orders.PATCH("/editar", orderHandler.Edit)
		orders.GET("/:id/itens", orderHandler.Items)
	}

	announcements := rg.Group(PathAnnouncements)
	{
		announcements.GET("", announcementHandler.List)
		announcements.POST("", announcementHandler.Create)
		announcements.POST("/deletar", announcementHandler.Delete)
	}

	archived := rg.Group(PathArchived)
	{
		archived.GET("/estatisticas", archiveHandler.Stats)
		archived.POST("/varredura", archiveHandler.RunSweep)
	}

	// Public: the receipt link is shared with customers.
	rg.GET(PathReceipts+"/:id", orderHandler.Receipt)
}

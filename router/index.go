package router

import (
	"vteam_ticket/handler"
	"vteam_ticket/middleware"
	"vteam_ticket/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)

	student := v1.Group("/student", logger.New())
	student.Get("/", middleware.Protected(), handler.GetStudents)
	student.Get("/match", middleware.Protected(), handler.MatchStudent)
	student.Get("/search", middleware.Protected(), handler.SearchStudents)
	student.Post("/import", middleware.Protected(), validate.ImportStudents(), handler.ImportStudents)
	student.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteStudents)

	ticketType := v1.Group("/ticket-type", logger.New())
	ticketType.Get("/", middleware.Protected(), handler.GetTicketCatalog)
	ticketType.Post("/", middleware.Protected(), validate.CreateTicketType(), handler.CreateTicketType)
	ticketType.Put("/:ticketTypeId", middleware.Protected(), validate.GetById("ticketTypeId"), validate.UpdateTicketType("ticketTypeId"), handler.UpdateTicketType)
	ticketType.Get("/:slug/color", middleware.Protected(), handler.GetTicketColor)
	ticketType.Put("/:slug/color", middleware.Protected(), validate.SetTicketColor(), handler.SetTicketColor)

	draft := v1.Group("/draft", logger.New())
	draft.Get("/", middleware.Protected(), handler.GetDraft)
	draft.Post("/field", middleware.Protected(), handler.UpdateFormField)
	draft.Post("/promote", middleware.Protected(), handler.PromoteSuggestion)
	draft.Post("/tab", middleware.Protected(), handler.TabShortcut)
	draft.Post("/submit", middleware.Protected(), handler.SubmitForm)
	draft.Post("/entries/:index/edit", middleware.Protected(), handler.EditDraftEntry)
	draft.Delete("/entries/:index", middleware.Protected(), handler.DeleteDraftEntry)
	draft.Delete("/", middleware.Protected(), handler.ClearDraft)

	order := v1.Group("/order", logger.New())
	order.Post("/submit", middleware.Protected(), validate.SubmitOrders(), handler.SubmitOrders)
	order.Post("/filter", middleware.Protected(), validate.FilterOrders(), handler.GetOrders)
	order.Get("/search", middleware.Protected(), handler.SearchOrders)
	order.Patch("/:orderId/cancel", middleware.Protected(), validate.GetById("orderId"), handler.CancelOrder)

	online := v1.Group("/online-order", logger.New())
	online.Post("/", validate.CreateOnlineOrder(), handler.CreateOnlineOrder)
	online.Get("/", middleware.Protected(), handler.GetOnlineOrders)
	online.Patch("/:onlineOrderId/verify", middleware.Protected(), validate.GetById("onlineOrderId"), validate.ReviewOnlineOrder(), handler.VerifyOnlineOrder)
	online.Patch("/:onlineOrderId/reject", middleware.Protected(), validate.GetById("onlineOrderId"), validate.ReviewOnlineOrder(), handler.RejectOnlineOrder)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/overview", middleware.Protected(), handler.GetAdminStats)
	statistic.Get("/breakdown", middleware.Protected(), handler.GetSalesBreakdown)

	v1.Get("/ws/sales", websocket.New(handler.SalesFeedConnection))
}

package handler

import "github.com/labstack/echo/v4"

// Register mounts every route on e.
func Register(e *echo.Echo, h *BookingHandler) {
	api := e.Group("/api/v1")

	api.GET("/cities", ListCities)
	api.GET("/tickets/:pnr", LookupTicket)
	api.POST("/contact", ValidateContact)

	s := api.Group("/sessions")
	s.POST("", h.CreateSession)
	s.GET("/:id", h.GetSession)
	s.POST("/:id/search", h.Search)
	s.GET("/:id/offers", h.ListOffers)
	s.POST("/:id/offers/:offerID", h.SelectOffer)
	s.GET("/:id/seats", h.GetSeatMap)
	s.POST("/:id/seats/:seatID/toggle", h.ToggleSeat)
	s.POST("/:id/passengers", h.AdvanceToPassengers)
	s.PATCH("/:id/passengers/:index", h.UpdatePassenger)
	s.POST("/:id/confirm", h.Confirm)
	s.GET("/:id/ticket.pdf", h.DownloadTicket)
	s.POST("/:id/back", h.Back)
	s.POST("/:id/reset", h.Reset)
	s.POST("/:id/view", h.Navigate)
	s.POST("/:id/reset-all", h.ResetAll)
	s.POST("/:id/ticket", h.CheckTicket)
	s.POST("/:id/contact", h.SubmitContact)
	s.POST("/:id/contact/reset", h.ResetContact)

	e.GET("/health", HealthHandler(h.store))
}

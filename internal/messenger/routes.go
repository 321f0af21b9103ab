package messenger

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/chat/webhook", h.VerifyWebhook)
	r.Post("/chat/webhook", h.HandleWebhook)
	r.Post("/chat/send_message", h.SendMessage)
}

package messenger

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	svc         Service
	verifyToken string
	log         *zap.SugaredLogger
}

func NewHandler(svc Service, verifyToken string, log *zap.SugaredLogger) *Handler {
	return &Handler{
		svc:         svc,
		verifyToken: verifyToken,
		log:         log,
	}
}

// VerifyWebhook — the platform's GET handshake: echo the challenge when the
// verify token matches.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if h.verifyToken == "" || token != h.verifyToken {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "invalid verify token"})
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(challenge))
}

type webhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Message *struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// HandleWebhook — inbound delivery. Always ACKs with 200: a non-200 here
// makes the platform redeliver the whole batch.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Warnw("webhook payload decode failed", "err", err)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	if payload.Object == "page" {
		for _, entry := range payload.Entry {
			for _, event := range entry.Messaging {
				if event.Message == nil || event.Message.Text == "" {
					continue
				}
				if err := h.svc.HandleIncoming(r.Context(), event.Sender.ID, event.Message.Text); err != nil {
					h.log.Errorw("pipeline failed", "sender", event.Sender.ID, "err", err)
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SendMessage — manual send endpoint.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RecipientID string `json:"recipient_id"`
		MessageText string `json:"message_text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if payload.RecipientID == "" || payload.MessageText == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "recipient_id and message_text required"})
		return
	}

	if err := h.svc.SendMessage(r.Context(), payload.RecipientID, payload.MessageText); err != nil {
		h.log.Errorw("manual send failed", "recipient", payload.RecipientID, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultGraphBaseURL = "https://graph.facebook.com/v19.0"

type GraphOutbound struct {
	baseURL string
	token   string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewGraphOutbound(baseURL, token string, log *zap.SugaredLogger) *GraphOutbound {
	if baseURL == "" {
		baseURL = defaultGraphBaseURL
	}

	return &GraphOutbound{
		baseURL: baseURL,
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type sendRequest struct {
	Recipient     recipientRef `json:"recipient"`
	Message       messageBody  `json:"message"`
	MessagingType string       `json:"messaging_type"`
}

type recipientRef struct {
	ID string `json:"id"`
}

type messageBody struct {
	Text string `json:"text"`
}

// Send posts one text message to the Graph API send endpoint. The access
// token goes into the query string, not a header — that is the API surface.
func (o *GraphOutbound) Send(ctx context.Context, recipientID, text string) error {
	if o.token == "" {
		return ErrNoAccessToken
	}

	b, err := json.Marshal(sendRequest{
		Recipient:     recipientRef{ID: recipientID},
		Message:       messageBody{Text: text},
		MessagingType: "RESPONSE",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/me/messages",
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	q := req.URL.Query()
	q.Set("access_token", o.token)
	req.URL.RawQuery = q.Encode()

	resp, err := o.client.Do(req)
	if err != nil {
		return &DispatchError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &DispatchError{
			StatusCode: resp.StatusCode,
			Detail:     graphErrorDetail(body),
		}
	}

	var ok struct {
		MessageID string `json:"message_id"`
	}
	_ = json.Unmarshal(body, &ok)
	o.log.Infow("graph send ok", "recipient", recipientID, "message_id", ok.MessageID)

	return nil
}

func graphErrorDetail(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return string(body)
}

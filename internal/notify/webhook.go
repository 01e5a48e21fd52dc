package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mapointeuse/pointeuse/internal/logging"
)

// webhookPayload is the JSON body posted for every notification event.
type webhookPayload struct {
	ID        int       `json:"id"`
	Kind      string    `json:"kind"` // "ongoing", "once" or "cancel"
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Webhook forwards notifications to an HTTP endpoint as JSON. Delivery is
// best-effort and asynchronous; failures are logged, never surfaced.
type Webhook struct {
	url    string
	client *HTTPClient
}

// NewWebhook creates a webhook notifier posting to the given URL.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: NewHTTPClient(),
	}
}

// ShowOngoing posts an "ongoing" event. The cancel action cannot cross an
// HTTP boundary and is ignored.
func (w *Webhook) ShowOngoing(id int, title, body string, cancelAction func()) {
	w.post(webhookPayload{ID: id, Kind: "ongoing", Title: title, Body: body, Timestamp: time.Now()})
}

// ShowOnce posts a "once" event.
func (w *Webhook) ShowOnce(id int, title, body string) {
	w.post(webhookPayload{ID: id, Kind: "once", Title: title, Body: body, Timestamp: time.Now()})
}

// Cancel posts a "cancel" event so the receiver can withdraw the slot.
func (w *Webhook) Cancel(id int) {
	w.post(webhookPayload{ID: id, Kind: "cancel", Timestamp: time.Now()})
}

func (w *Webhook) post(p webhookPayload) {
	data, err := json.Marshal(p)
	if err != nil {
		logging.Error("webhook marshal failed", logging.KeyError, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		result := w.client.Send(ctx, w.url, "application/json", data)
		if result.Error != nil {
			logging.Warn("webhook delivery failed",
				logging.KeyError, result.Error,
				"attempts", result.Attempts)
		}
	}()
}

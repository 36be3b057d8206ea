package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

const defaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

var ErrMissingExpoAccessToken = errors.New("missing EXPO_ACCESS_TOKEN")

// ExpoSink delivers PushMessage fan-outs through the Expo push HTTP API.
// Delivery is best-effort: the dispatcher logs failures and never retries.
//
// Supported env vars:
//   - EXPO_ACCESS_TOKEN (required unless mocked)
//   - EXPO_PUSH_URL (default: the public Expo endpoint)
//   - NOTIFICATIONS_MOCK (truthy values log instead of sending)
type ExpoSink struct {
	httpClient  *http.Client
	url         string
	accessToken string
	mockMode    bool
}

var _ interfaces.INotificationSink = (*ExpoSink)(nil)

func NewExpoSink() (*ExpoSink, error) {
	if isNotificationsMockEnabled() {
		log.Printf("[notify][expo] mock mode enabled")
		return &ExpoSink{mockMode: true}, nil
	}

	accessToken := os.Getenv("EXPO_ACCESS_TOKEN")
	if accessToken == "" {
		return nil, ErrMissingExpoAccessToken
	}

	url := os.Getenv("EXPO_PUSH_URL")
	if url == "" {
		url = defaultExpoPushURL
	}
	log.Printf("[notify][expo] push sink initialized")
	return &ExpoSink{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		url:         url,
		accessToken: accessToken,
	}, nil
}

type expoPushRequest struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

func (s *ExpoSink) Send(ctx context.Context, msg entities.PushMessage) error {
	if s.mockMode {
		log.Printf("[notify][expo] mock send title=%q body=%q recipients=%d", msg.Title, msg.Body, len(msg.To))
		return nil
	}
	if len(msg.To) == 0 {
		return nil
	}

	payload, err := json.Marshal(expoPushRequest{
		To:    msg.To,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
		Sound: "default",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("expo push responded %d: %s", resp.StatusCode, string(body))
	}
	log.Printf("[notify][expo] sent recipients=%d", len(msg.To))
	return nil
}

func isNotificationsMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATIONS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

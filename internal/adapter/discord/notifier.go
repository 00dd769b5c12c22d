package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"solana-money-mover/config"
	"solana-money-mover/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier implements ports.AuditNotifier by posting embeds to a Discord
// webhook. Delivery is fire-and-forget: a single async attempt, failures
// logged and swallowed. An empty webhook URL disables delivery entirely.
type Notifier struct {
	webhookURL string
	username   string
	avatarURL  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewNotifier creates a new Notifier.
func NewNotifier(cfg config.DiscordConfig, httpClient HTTPClient, log zerolog.Logger) *Notifier {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Notifier{
		webhookURL: cfg.WebhookURL,
		username:   cfg.Username,
		avatarURL:  cfg.AvatarURL,
		httpClient: httpClient,
		log:        log,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields,omitempty"`
	Timestamp string       `json:"timestamp"`
}

type webhookPayload struct {
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []embed `json:"embeds"`
}

// Notify posts the event to the webhook. Never blocks the caller on the
// HTTP round trip and never reports failure upstream.
func (n *Notifier) Notify(ctx context.Context, event *domain.AuditEvent) {
	if n.webhookURL == "" {
		n.log.Debug().Str("kind", string(event.Kind)).Msg("discord: no webhook URL configured, skipping")
		return
	}

	payload := webhookPayload{
		Username:  n.username,
		AvatarURL: n.avatarURL,
		Embeds:    []embed{buildEmbed(event)},
	}

	go n.deliver(payload, string(event.Kind))
}

// deliver makes a single delivery attempt.
func (n *Notifier) deliver(payload webhookPayload, kind string) {
	body, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Str("kind", kind).Msg("discord: failed to marshal payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		n.log.Error().Err(err).Str("kind", kind).Msg("discord: failed to build request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.Warn().Err(err).Str("kind", kind).Msg("discord: delivery failed")
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 300 {
		n.log.Warn().Int("status", resp.StatusCode).Str("kind", kind).Msg("discord: webhook rejected")
		return
	}

	n.log.Debug().Str("kind", kind).Msg("discord: event delivered")
}

func buildEmbed(event *domain.AuditEvent) embed {
	e := embed{
		Title:     embedTitle(event.Kind),
		Color:     event.Kind.Color(),
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
	}

	if event.PublicKey != "" {
		e.Fields = append(e.Fields, embedField{Name: "Wallet", Value: event.PublicKey, Inline: true})
	}
	if event.SessionID != "" {
		e.Fields = append(e.Fields, embedField{Name: "Session", Value: event.SessionID, Inline: true})
	}
	if event.Destination != "" {
		e.Fields = append(e.Fields, embedField{Name: "Destination", Value: event.Destination, Inline: true})
	}
	if event.ClientInfo != "" {
		e.Fields = append(e.Fields, embedField{Name: "Client", Value: event.ClientInfo, Inline: false})
	}
	if event.TotalValue > 0 {
		e.Fields = append(e.Fields, embedField{Name: "Total Value", Value: fmt.Sprintf("$%.2f", event.TotalValue), Inline: true})
	}
	if event.Signature != "" {
		e.Fields = append(e.Fields, embedField{
			Name:  "Transaction",
			Value: fmt.Sprintf("https://explorer.solana.com/tx/%s", event.Signature),
		})
	}
	if event.Error != "" {
		e.Fields = append(e.Fields, embedField{Name: "Error", Value: event.Error})
	}

	return e
}

func embedTitle(kind domain.AuditEventKind) string {
	switch kind {
	case domain.AuditWalletConnected:
		return "💰 Wallet Connected"
	case domain.AuditTransferStarted:
		return "🚀 Transfer Started"
	case domain.AuditTransferCompleted:
		return "✅ Transfer Completed"
	case domain.AuditTransferFailed:
		return "❌ Transfer Failed"
	case domain.AuditTransferError:
		return "⚠️ Transfer Error"
	default:
		return string(kind)
	}
}

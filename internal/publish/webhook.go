package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/report"
)

// embed mirrors the subset of a Discord webhook embed the reports use.
type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields,omitempty"`
	Footer      embedFooter  `json:"footer"`
	Timestamp   string       `json:"timestamp"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type webhookMessage struct {
	Embeds []embed `json:"embeds"`
}

// Webhook delivers reports to a Discord-compatible webhook URL. The gateway
// connection itself lives outside this service; a webhook is a bare JSON
// POST.
type Webhook struct {
	url    string
	client *http.Client
}

func NewWebhook(client *http.Client, url string) *Webhook {
	return &Webhook{url: url, client: client}
}

// Publish posts the report as a single embed.
func (w *Webhook) Publish(ctx context.Context, rep report.Report) error {
	body, err := json.Marshal(webhookMessage{Embeds: []embed{toEmbed(rep)}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed: status %d", resp.StatusCode)
	}
	return nil
}

func toEmbed(rep report.Report) embed {
	e := embed{
		Title:       rep.Title,
		Description: rep.Description,
		Color:       rep.Color,
		Footer:      embedFooter{Text: rep.Footer},
		Timestamp:   rep.Timestamp.Format(time.RFC3339),
	}
	for _, f := range rep.Fields {
		e.Fields = append(e.Fields, embedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if rep.Table != "" {
		e.Fields = append(e.Fields, embedField{Name: "Päivän ennuste", Value: rep.Table})
	}
	return e
}

// LogOnly is the delivery used when no webhook is configured.
func LogOnly(_ context.Context, rep report.Report) error {
	log.Printf("publish: no webhook configured; report %q not delivered", rep.Title)
	return nil
}

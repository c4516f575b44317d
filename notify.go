package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Type        string       `json:"type,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Color       int          `json:"color,omitempty"`
	Footer      *Footer      `json:"footer,omitempty"`
	Image       *Image       `json:"image,omitempty"`
	Thumbnail   *Thumbnail   `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type Footer struct {
	Text    string `json:"text,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type Image struct {
	URL    string `json:"url,omitempty"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

type Thumbnail struct {
	URL string `json:"url,omitempty"`
}

type EmbedAuthor struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type WebhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// sendDiscordWebhook posts message and embeds to webhookURL.
func sendDiscordWebhook(webhookURL, message string, embeds []Embed) error {
	payload := WebhookPayload{Embeds: embeds, Content: message}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	slog.Debug("discord message sent")
	return nil
}

// notifyGameEnd posts a single embed describing how the game ended, colored
// by outcome. A blank webhookURL disables this (the caller skips calling it);
// any error here is logged and swallowed, never propagated to /end's caller.
func notifyGameEnd(webhookURL string, req MoveRequest) {
	if webhookURL == "" {
		return
	}

	outcome, description := describeGameOutcome(req)
	embed := Embed{
		Title:       fmt.Sprintf("Game %s finished", req.Game.ID),
		Description: description,
		Color:       getColorForOutcome(outcome),
		Fields: []EmbedField{
			{Name: "Turn", Value: fmt.Sprintf("%d", req.Turn), Inline: true},
		},
	}

	if err := sendDiscordWebhook(webhookURL, "", []Embed{embed}); err != nil {
		slog.Error("notify game end failed", "error", err, "game", req.Game.ID)
	}
}

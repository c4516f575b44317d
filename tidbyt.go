package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const tidbytPushURLFormat = "https://api.tidbyt.com/v0/devices/%s/push"

type PushRequest struct {
	Image          string `json:"image"`
	InstallationID string `json:"installationID,omitempty"`
	Background     bool   `json:"background"`
}

// PushToTidbyt posts a base64-encoded pre-rendered image to a Tidbyt device
// (server.go passes the rendered game GIF). Used as
// an optional post-game diagnostic; a blank secret or deviceID disables it.
func PushToTidbyt(secret, deviceID, webpBase64 string) error {
	if secret == "" || deviceID == "" {
		return nil
	}

	body := PushRequest{Image: webpBase64, Background: false}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal tidbyt push request: %w", err)
	}

	pushURL := fmt.Sprintf(tidbytPushURLFormat, deviceID)
	req, err := http.NewRequest("POST", pushURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("build tidbyt request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", secret))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send tidbyt request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tidbyt API returned status: %s", resp.Status)
	}

	slog.Info("image pushed to tidbyt")
	return nil
}

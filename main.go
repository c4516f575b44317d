package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	handler := NewGoogleCloudHandler(os.Stdout, slog.LevelInfo)
	slog.SetDefault(slog.New(handler))

	cfg := LoadConfig()

	webhookURL, err := getSecret(cfg.DiscordSecretName)
	if err != nil {
		slog.Error("failed to retrieve discord webhook secret", "error", err)
		webhookURL = ""
	}

	tidbytKey, err := getSecret(cfg.TidbytSecretName)
	if err != nil {
		slog.Error("failed to retrieve tidbyt secret", "error", err)
		tidbytKey = ""
	}

	if webhookURL != "" {
		if err := sendDiscordWebhook(webhookURL, "serpentbrain starting up", nil); err != nil {
			slog.Warn("startup notification failed", "error", err)
		}
	}

	server := NewServer(cfg, webhookURL, tidbytKey)

	slog.Info("starting serpentbrain", "port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, server.Routes()))
}

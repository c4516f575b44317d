package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
)

// uploadGameRecording streams a rendered game GIF into bucketName, keyed by
// gameID. Optional diagnostic archive; errors are returned for the caller to
// log, never surfaced to the game loop.
func uploadGameRecording(ctx context.Context, bucketName, gameID string, gif []byte) error {
	if bucketName == "" {
		return nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	object := client.Bucket(bucketName).Object(fmt.Sprintf("%s.gif", gameID))
	writer := object.NewWriter(ctx)

	if _, err := io.Copy(writer, bytes.NewReader(gif)); err != nil {
		return fmt.Errorf("copy gif to bucket: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close bucket writer: %w", err)
	}

	slog.Debug("game recording uploaded", "game_id", gameID)
	return nil
}

package main

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// getSecret fetches the latest version of a Google Secret Manager secret by
// its full resource name. A blank name short-circuits to ("", nil) so
// callers can leave a secret unconfigured without touching GCP at all.
func getSecret(secretName string) (string, error) {
	if secretName == "" {
		return "", nil
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer client.Close()

	req := &secretmanagerpb.AccessSecretVersionRequest{Name: secretName}
	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("access secret version: %w", err)
	}

	return string(result.Payload.GetData()), nil
}

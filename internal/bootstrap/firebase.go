package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	storagehandle "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/devport/portfolio-backend/config"
)

// FirebaseClients bundles the per-process Firebase handles. All three come
// from one Admin SDK app and share its credentials.
type FirebaseClients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *storagehandle.BucketHandle
}

func InitFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*FirebaseClients, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get default bucket: %w", err)
	}

	return &FirebaseClients{
		Firestore: fsClient,
		Auth:      authClient,
		Bucket:    bucket,
	}, nil
}

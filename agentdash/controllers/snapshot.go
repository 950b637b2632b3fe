package controllers

import (
	"context"

	"agentdash/agentdash/chat"
	"agentdash/agentdash/sources/storage"
)

// SnapshotController archives the serialized chat state to object storage.
type SnapshotController struct {
	store *chat.Store
	minio *storage.MinIOClient
}

func NewSnapshotController(store *chat.Store, minio *storage.MinIOClient) *SnapshotController {
	return &SnapshotController{store: store, minio: minio}
}

func (c *SnapshotController) Create(ctx context.Context) (string, error) {
	payload, err := chat.Serialize(c.store.Snapshot())
	if err != nil {
		return "", err
	}
	return c.minio.UploadSnapshot(ctx, payload)
}

func (c *SnapshotController) Get(ctx context.Context, key string) (string, error) {
	return c.minio.GetSnapshot(ctx, key)
}

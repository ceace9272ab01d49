// Package storage connects to the S3-compatible bucket that downloaded assets
// are published to, through minio-go.
//
// The Client interface only carries the calls fad makes, which keeps the mock
// in core/storage/mocks small: bucket provisioning for EnsureBucket, StatObject
// to skip unchanged uploads, and ListObjects and RemoveObject for manifest
// checks and purges against a bucket.
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage

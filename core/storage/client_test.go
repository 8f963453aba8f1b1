package storage_test

import (
	"context"
	"errors"
	"testing"

	"tcg-catalog/core/storage"
	"tcg-catalog/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "catalog-media",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	cfg := storage.Config{Bucket: "catalog-media", Region: "us-east-1"}

	t.Run("BucketAlreadyExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", context.Background(), "catalog-media").Return(true, nil)

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket")
	})

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", context.Background(), "catalog-media").Return(false, nil)
		client.On("MakeBucket", context.Background(), "catalog-media", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("ExistsCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", context.Background(), "catalog-media").Return(false, errors.New("connection refused"))

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog-media")
	})
}

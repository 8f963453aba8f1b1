package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tcg-catalog/core/storage/mocks"
	"tcg-catalog/feature/catalog"
	"tcg-catalog/feature/tcgdex"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestImageMirror(t *testing.T) {
	t.Run("MirrorsImage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cards/base1-4/high.png", r.URL.Path)
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		}))
		defer server.Close()

		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "catalog-media", "cards/base1-4.png",
			mock.Anything, int64(len("png-bytes")), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		mirror := catalog.NewImageMirror(client, "catalog-media", zap.NewNop())
		mirror.Mirror(context.Background(), &tcgdex.Card{
			ID:    "base1-4",
			Image: server.URL + "/cards/base1-4",
		})

		client.AssertExpectations(t)
	})

	t.Run("NoImageReference", func(t *testing.T) {
		client := new(mocks.Client)

		mirror := catalog.NewImageMirror(client, "catalog-media", zap.NewNop())
		mirror.Mirror(context.Background(), &tcgdex.Card{ID: "base1-4"})

		client.AssertNotCalled(t, "PutObject")
	})

	t.Run("DownloadFailureIsSwallowed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := new(mocks.Client)

		mirror := catalog.NewImageMirror(client, "catalog-media", zap.NewNop())
		mirror.Mirror(context.Background(), &tcgdex.Card{
			ID:    "base1-4",
			Image: server.URL + "/cards/base1-4",
		})

		client.AssertNotCalled(t, "PutObject")
	})
}

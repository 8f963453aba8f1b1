package catalog

import (
	"bytes"
	"context"
	"time"

	"tcg-catalog/core/storage"
	"tcg-catalog/feature/tcgdex"

	"github.com/go-resty/resty/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ImageMirror copies card illustrations from the reference CDN into object
// storage so the shop serves them from its own bucket. Mirroring is strictly
// best-effort: a failure is logged and never affects synchronization results.
type ImageMirror struct {
	storage storage.Client
	bucket  string
	http    *resty.Client
	logger  *zap.Logger
}

// NewImageMirror creates an image mirror writing into the given bucket.
func NewImageMirror(client storage.Client, bucket string, logger *zap.Logger) *ImageMirror {
	return &ImageMirror{
		storage: client,
		bucket:  bucket,
		http:    resty.New().SetTimeout(30 * time.Second),
		logger:  logger,
	}
}

// Mirror downloads the card's high resolution illustration and stores it
// under cards/<cardID>.png. Cards without an image reference are ignored.
func (m *ImageMirror) Mirror(ctx context.Context, card *tcgdex.Card) {
	if card.Image == "" {
		return
	}

	url := card.Image + "/high.png"
	resp, err := m.http.R().SetContext(ctx).Get(url)
	if err != nil || !resp.IsSuccess() {
		m.logger.Warn("Card image download failed",
			zap.String("card_id", card.ID),
			zap.String("url", url),
			zap.Error(err))
		return
	}

	body := resp.Body()
	objectName := "cards/" + card.ID + ".png"

	_, err = m.storage.PutObject(ctx, m.bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		m.logger.Warn("Card image upload failed",
			zap.String("card_id", card.ID),
			zap.String("object", objectName),
			zap.Error(err))
		return
	}

	m.logger.Debug("Card image mirrored",
		zap.String("card_id", card.ID),
		zap.String("object", objectName))
}

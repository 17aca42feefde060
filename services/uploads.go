package services

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/vedanta-tech/team-site-backend/errs"
)

// Upload is one submitted binary destined for the object store
type Upload struct {
	Name   string
	Reader io.Reader
}

// AssetStore is what the services need from the object store: an upload
// that yields a public URL, and an idempotent delete taking that URL back.
type AssetStore interface {
	Upload(ctx context.Context, folder, suggestedName string, r io.Reader) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// uploadAll uploads the files in order and returns their URLs. If an
// upload fails partway, the already-uploaded blobs are best-effort
// deleted before the error is returned.
func uploadAll(ctx context.Context, assets AssetStore, logger zerolog.Logger, folder string, files []Upload) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := assets.Upload(ctx, folder, f.Name, f.Reader)
		if err != nil {
			deleteAssets(ctx, assets, logger, urls)
			return nil, errs.NewStorageError("upload", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// deleteAssets removes the given asset URLs best-effort: a failure is
// logged and the rest are still attempted.
func deleteAssets(ctx context.Context, assets AssetStore, logger zerolog.Logger, urls []string) {
	for _, url := range urls {
		if err := assets.DeleteByURL(ctx, url); err != nil {
			logger.Error().Err(err).Str("url", url).Msg("failed to delete asset")
		}
	}
}

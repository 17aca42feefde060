package services

import (
	"context"
	"fmt"
	"io"
)

// fakeAssets records uploads and deletions in call order.
type fakeAssets struct {
	uploads   []string
	deletions []string
	uploadErr error
	calls     []string // "upload" / "delete" interleaved, for ordering checks
}

func (f *fakeAssets) Upload(ctx context.Context, folder, suggestedName string, r io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	url := fmt.Sprintf("https://assets.test/%s/%d-%s", folder, len(f.uploads), suggestedName)
	f.uploads = append(f.uploads, url)
	f.calls = append(f.calls, "upload")
	return url, nil
}

func (f *fakeAssets) DeleteByURL(ctx context.Context, url string) error {
	f.deletions = append(f.deletions, url)
	f.calls = append(f.calls, "delete")
	return nil
}

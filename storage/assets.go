// Package storage adapts the object store: uploads return a publicly
// dereferenceable URL and deletes take that URL back.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/vedanta-tech/team-site-backend/metrics"
)

// Path namespaces for uploaded binaries, one per entity kind
const (
	TeamMembersFolder  = "team-members"
	HackathonsFolder   = "hackathons"
	AchievementsFolder = "achievements"
	ProjectsFolder     = "projects"
	BlogsFolder        = "blogs"
	AudioFolder        = "audio"
)

const publicHost = "https://storage.googleapis.com"

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

type Assets struct {
	client *gcs.Client
	bucket string
}

func New(client *gcs.Client, bucket string) *Assets {
	return &Assets{client: client, bucket: bucket}
}

// Upload stores the blob under folder with a fresh unique object name and
// returns the public URL it is retrievable at. The suggested name only
// contributes a readable suffix.
func (a *Assets) Upload(ctx context.Context, folder, suggestedName string, r io.Reader) (string, error) {
	name := unsafeNameChars.ReplaceAllString(path.Base(suggestedName), "-")
	if name == "" || name == "." {
		name = "upload"
	}
	object := fmt.Sprintf("%s/%s-%s", folder, uuid.NewString(), name)

	w := a.client.Bucket(a.bucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", object, err)
	}

	metrics.AssetUploads.Inc()
	return fmt.Sprintf("%s/%s/%s", publicHost, a.bucket, object), nil
}

// DeleteByURL removes the object a previous Upload returned. Deleting an
// object that is already gone succeeds, so compensating cleanup can retry.
func (a *Assets) DeleteByURL(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("%s/%s/", publicHost, a.bucket)
	if !strings.HasPrefix(url, prefix) {
		return fmt.Errorf("delete: url %q does not belong to bucket %s", url, a.bucket)
	}
	object := strings.TrimPrefix(url, prefix)

	err := a.client.Bucket(a.bucket).Object(object).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", object, err)
	}
	return nil
}

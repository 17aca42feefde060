package api

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vedanta-tech/team-site-backend/services"
)

type trackingReader struct {
	*strings.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func buildMultipartRequest(t *testing.T, data string, files map[string][]string) (body *bytes.Buffer, contentType string) {
	t.Helper()
	body = &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if data != "" {
		if err := writer.WriteField("data", data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for field, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := part.Write([]byte("binary")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestDecodePayloadJSONBody(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}
	r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"title":"Site Redesign"}`))
	r.Header.Set("Content-Type", "application/json")

	uploads, err := decodePayload(r, &dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uploads) != 0 {
		t.Errorf("expected no uploads from a JSON body, got %d", len(uploads))
	}
	if dst.Title != "Site Redesign" {
		t.Errorf("expected decoded title, got %q", dst.Title)
	}
}

func TestDecodePayloadMultipart(t *testing.T) {
	body, contentType := buildMultipartRequest(t, `{"title":"With Images"}`, map[string][]string{
		"images": {"a.png", "b.png"},
	})
	var dst struct {
		Title string `json:"title"`
	}
	r := httptest.NewRequest("POST", "/api/projects", body)
	r.Header.Set("Content-Type", contentType)

	uploads, err := decodePayload(r, &dst, "images")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeUploads(uploads)

	if dst.Title != "With Images" {
		t.Errorf("expected decoded title, got %q", dst.Title)
	}
	if len(uploads) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(uploads))
	}
	if uploads[0].Name != "a.png" || uploads[1].Name != "b.png" {
		t.Errorf("expected uploads in form order, got %q and %q", uploads[0].Name, uploads[1].Name)
	}
}

func TestDecodePayloadMultipartWithoutData(t *testing.T) {
	body, contentType := buildMultipartRequest(t, "", map[string][]string{
		"image": {"portrait.png"},
	})
	var dst struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest("PUT", "/api/team-members/tm-1", body)
	r.Header.Set("Content-Type", contentType)

	uploads, err := decodePayload(r, &dst, "image")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeUploads(uploads)

	if len(uploads) != 1 {
		t.Fatalf("expected 1 upload for a file-only update, got %d", len(uploads))
	}
}

func TestCloseUploadsReleasesReaders(t *testing.T) {
	readers := []*trackingReader{
		{Reader: strings.NewReader("a")},
		{Reader: strings.NewReader("b")},
	}
	uploads := []services.Upload{
		{Name: "a.png", Reader: readers[0]},
		{Name: "b.png", Reader: readers[1]},
	}

	closeUploads(uploads)

	for i, r := range readers {
		if !r.closed {
			t.Errorf("expected reader %d closed", i)
		}
	}
}

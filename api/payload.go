package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

const maxUploadMemory = 32 << 20 // 32MB

// decodePayload decodes the request body into dst. Plain JSON bodies are
// decoded directly. Multipart bodies carry the JSON document in the "data"
// form field with file parts alongside; the parts named by fileFields are
// returned as uploads, in form order per field.
func decodePayload(r *http.Request, dst any, fileFields ...string) ([]services.Upload, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}

	if mediaType != "multipart/form-data" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return nil, errs.NewBadRequestError("malformed request body")
		}
		return nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, errs.NewBadRequestError("malformed multipart form")
	}

	// The JSON document rides in the "data" field. Absence is fine for
	// file-only updates; the services validate required fields themselves.
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), dst); err != nil {
			return nil, errs.NewBadRequestError("malformed data field")
		}
	}

	var uploads []services.Upload
	for _, field := range fileFields {
		for _, header := range r.MultipartForm.File[field] {
			file, err := header.Open()
			if err != nil {
				closeUploads(uploads)
				return nil, errs.NewBadRequestError("unreadable file part: " + header.Filename)
			}
			uploads = append(uploads, services.Upload{Name: header.Filename, Reader: file})
		}
	}
	return uploads, nil
}

// closeUploads releases the file handles behind a decoded payload's uploads.
// Callers defer it once the service call has consumed the readers.
func closeUploads(uploads []services.Upload) {
	for _, u := range uploads {
		if closer, ok := u.Reader.(io.Closer); ok {
			closer.Close()
		}
	}
}

// firstUpload returns a pointer to the first upload, for the single-image
// endpoints.
func firstUpload(uploads []services.Upload) *services.Upload {
	if len(uploads) == 0 {
		return nil
	}
	return &uploads[0]
}

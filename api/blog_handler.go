package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.BlogService
}

func newBlogHandler(service services.BlogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getPublishedBlogs is the public listing. Drafts stay hidden.
func (h blogHandler) getPublishedBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.service.ListPublished(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// getAllBlogs is the admin listing and includes drafts.
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// getBlog accepts either a document ID or a slug.
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrSlug := chi.URLParam(r, "blogID")
		if idOrSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
			return
		}

		blog, err := h.service.Resolve(r.Context(), idOrSlug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.BlogInput
		uploads, err := decodePayload(r, &input, "featuredImage")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		blog, err := h.service.Create(r.Context(), input, firstUpload(uploads))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blog)
	}
}

func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID := chi.URLParam(r, "blogID")
		if blogID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
			return
		}

		var update services.BlogUpdate
		uploads, err := decodePayload(r, &update, "featuredImage")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		blog, err := h.service.Update(r.Context(), blogID, update, firstUpload(uploads))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID := chi.URLParam(r, "blogID")
		if blogID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
			return
		}

		if err := h.service.Delete(r.Context(), blogID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}

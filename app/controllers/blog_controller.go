package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gritline/app/dto"
	"gritline/app/models"
	"gritline/app/services"
)

type BlogController struct {
	Posts *services.BlogService
}

func NewBlogController(posts *services.BlogService) *BlogController {
	return &BlogController{Posts: posts}
}

func (c *BlogController) ListPublic(w http.ResponseWriter, r *http.Request) {
	out, err := c.Posts.ListPublished(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list posts failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPublic returns a single published post by slug.
// GET /api/blog/post?slug=...
func (c *BlogController) GetPublic(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "slug is required")
		return
	}
	p, err := c.Posts.GetPublished(slug)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *BlogController) ListAdmin(w http.ResponseWriter, r *http.Request) {
	out, err := c.Posts.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list posts failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BlogPostRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p := models.BlogPost{Slug: req.Slug, Title: req.Title, Excerpt: req.Excerpt, Body: req.Body, Published: req.Published}
	if err := c.Posts.Create(r.Context(), &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.BlogPostRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	p := models.BlogPost{ID: req.ID, Slug: req.Slug, Title: req.Title, Excerpt: req.Excerpt, Body: req.Body, Published: req.Published}
	if err := c.Posts.Update(r.Context(), &p); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.IDRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Posts.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gritline/app/dto"
	"gritline/app/models"
	"gritline/app/services"
)

type GalleryController struct {
	Gallery *services.GalleryService
}

func NewGalleryController(gallery *services.GalleryService) *GalleryController {
	return &GalleryController{Gallery: gallery}
}

// ListPublic returns published items for the public gallery page.
func (c *GalleryController) ListPublic(w http.ResponseWriter, r *http.Request) {
	items, err := c.Gallery.ListPublished(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list gallery failed")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *GalleryController) ListAdmin(w http.ResponseWriter, r *http.Request) {
	items, err := c.Gallery.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list gallery failed")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.GalleryItemRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	item := models.GalleryItem{
		Title: req.Title, Caption: req.Caption, ImageKey: req.ImageKey, ImageURL: req.ImageURL,
		Category: req.Category, SortOrder: req.SortOrder, Published: req.Published,
	}
	if err := c.Gallery.Create(r.Context(), &item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *GalleryController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.GalleryItemRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	item := models.GalleryItem{
		ID: req.ID, Title: req.Title, Caption: req.Caption, ImageKey: req.ImageKey, ImageURL: req.ImageURL,
		Category: req.Category, SortOrder: req.SortOrder, Published: req.Published,
	}
	if err := c.Gallery.Update(r.Context(), &item); err != nil {
		if errors.Is(err, services.ErrGalleryItemNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.IDRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Gallery.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, services.ErrGalleryItemNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// Upload accepts a multipart image and stores it in the blob store.
// POST /admin/gallery/upload, field name "image".
func (c *GalleryController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()
	key, url, err := c.Gallery.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.UploadImageResponse{Key: key, URL: url})
}

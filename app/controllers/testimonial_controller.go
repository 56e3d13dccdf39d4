package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gritline/app/dto"
	"gritline/app/models"
	"gritline/app/services"
)

type TestimonialController struct {
	Testimonials *services.TestimonialService
}

func NewTestimonialController(t *services.TestimonialService) *TestimonialController {
	return &TestimonialController{Testimonials: t}
}

func (c *TestimonialController) ListPublic(w http.ResponseWriter, r *http.Request) {
	out, err := c.Testimonials.ListApproved(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list testimonials failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *TestimonialController) ListAdmin(w http.ResponseWriter, r *http.Request) {
	out, err := c.Testimonials.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list testimonials failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *TestimonialController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TestimonialRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	t := models.Testimonial{Author: req.Author, Location: req.Location, Quote: req.Quote, Rating: req.Rating, Approved: req.Approved}
	if err := c.Testimonials.Create(r.Context(), &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (c *TestimonialController) Approve(w http.ResponseWriter, r *http.Request) {
	var req dto.ApproveRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Testimonials.SetApproved(r.Context(), req.ID, req.Approved); err != nil {
		if errors.Is(err, services.ErrTestimonialNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (c *TestimonialController) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.IDRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Testimonials.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, services.ErrTestimonialNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

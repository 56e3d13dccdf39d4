package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gritline/app/dto"
	"gritline/app/models"
	"gritline/app/services"
)

type ContactController struct {
	Contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{Contacts: contacts}
}

// Submit handles the public contact/quote form.
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.ContactRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	sub := models.ContactSubmission{Name: req.Name, Email: req.Email, Phone: req.Phone, Service: req.Service, Message: req.Message}
	if err := c.Contacts.Submit(&sub); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (c *ContactController) ListAdmin(w http.ResponseWriter, r *http.Request) {
	out, err := c.Contacts.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list submissions failed")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *ContactController) MarkHandled(w http.ResponseWriter, r *http.Request) {
	var req dto.HandledRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Contacts.MarkHandled(req.ID, req.Handled); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.IDRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Contacts.Delete(req.ID); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

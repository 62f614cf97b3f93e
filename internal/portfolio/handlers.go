package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kishordev/portfolio-api/internal/logger"
	"github.com/kishordev/portfolio-api/internal/store"
	"github.com/kishordev/portfolio-api/internal/utils"
	"go.uber.org/zap"
)

// Handler handles the portfolio resource HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the v1 resource routes. Reads are public;
// writes go through the protect middleware.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, protect func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /v1/about/all", h.listAbout)
	mux.HandleFunc("GET /v1/about/{id}", h.getAbout)
	mux.HandleFunc("GET /v1/education/all", h.listEducation)
	mux.HandleFunc("GET /v1/education/{id}", h.getEducation)
	mux.HandleFunc("GET /v1/contact", h.getContact)
	mux.HandleFunc("GET /v1/certificates/all", h.listCertificates)
	mux.HandleFunc("GET /v1/certificates/{id}", h.getCertificate)
	mux.HandleFunc("GET /v1/programming-languages", h.listProgrammingLanguages)
	mux.HandleFunc("GET /v1/spoken-languages", h.listSpokenLanguages)
	mux.HandleFunc("GET /v1/tech-stacks", h.listTechStacks)

	writes := map[string]http.HandlerFunc{
		"POST /v1/about/{id}":                   h.createAbout,
		"PUT /v1/about/{id}":                    h.updateAbout,
		"DELETE /v1/about/{id}":                 h.deleteAbout,
		"POST /v1/education":                    h.createEducation,
		"PUT /v1/education/{id}":                h.updateEducation,
		"DELETE /v1/education/{id}":             h.deleteEducation,
		"POST /v1/contact":                      h.createContact,
		"PUT /v1/contact":                       h.updateContact,
		"DELETE /v1/contact":                    h.deleteContact,
		"POST /v1/certificates":                 h.createCertificate,
		"PUT /v1/certificates/{id}":             h.updateCertificate,
		"DELETE /v1/certificates/{id}":          h.deleteCertificate,
		"POST /v1/programming-languages":        h.createProgrammingLanguage,
		"PUT /v1/programming-languages/{id}":    h.updateProgrammingLanguage,
		"DELETE /v1/programming-languages/{id}": h.deleteProgrammingLanguage,
		"POST /v1/spoken-languages":             h.createSpokenLanguage,
		"PUT /v1/spoken-languages/{id}":         h.updateSpokenLanguage,
		"DELETE /v1/spoken-languages/{id}":      h.deleteSpokenLanguage,
		"POST /v1/tech-stacks":                  h.createTechStack,
		"PUT /v1/tech-stacks/{id}":              h.updateTechStack,
		"DELETE /v1/tech-stacks/{id}":           h.deleteTechStack,
	}
	for pattern, handler := range writes {
		mux.Handle(pattern, protect(handler))
	}
}

// decodeJSON decodes the request body, answering 400 on failure.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Bad Request")
		return v, false
	}
	return v, true
}

func respondErr(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Not Found")
		return
	}
	logger.Error("Portfolio request failed", zap.Error(err))
	utils.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}

func (h *Handler) listAbout(w http.ResponseWriter, r *http.Request) {
	abouts, err := h.service.ListAbout(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	if len(abouts) == 0 {
		utils.WriteError(w, http.StatusNotFound, "Not Found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, abouts)
}

func (h *Handler) getAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.service.GetAbout(r.Context(), r.PathValue("id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, about)
}

func (h *Handler) createAbout(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[About](w, r)
	if !ok {
		return
	}
	about, err := h.service.CreateAbout(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, about)
}

func (h *Handler) updateAbout(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[About](w, r)
	if !ok {
		return
	}
	about, err := h.service.UpdateAbout(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, about)
}

func (h *Handler) deleteAbout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAbout(r.Context(), r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listEducation(w http.ResponseWriter, r *http.Request) {
	educations, err := h.service.ListEducation(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, educations)
}

func (h *Handler) getEducation(w http.ResponseWriter, r *http.Request) {
	education, err := h.service.GetEducation(r.Context(), r.PathValue("id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, education)
}

func (h *Handler) createEducation(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[Education](w, r)
	if !ok {
		return
	}
	education, err := h.service.CreateEducation(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, education)
}

func (h *Handler) updateEducation(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[Education](w, r)
	if !ok {
		return
	}
	education, err := h.service.UpdateEducation(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, education)
}

func (h *Handler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEducation(r.Context(), r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.GetContact(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, contact)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[Contact](w, r)
	if !ok {
		return
	}
	contact, err := h.service.CreateContact(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, contact)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[Contact](w, r)
	if !ok {
		return
	}
	contact, err := h.service.UpdateContact(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, contact)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteContact(r.Context()); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.service.ListCertificates(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, certificates)
}

func (h *Handler) getCertificate(w http.ResponseWriter, r *http.Request) {
	certificate, err := h.service.GetCertificate(r.Context(), r.PathValue("id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, certificate)
}

func (h *Handler) createCertificate(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[Certificate](w, r)
	if !ok {
		return
	}
	certificate, err := h.service.CreateCertificate(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, certificate)
}

func (h *Handler) updateCertificate(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[Certificate](w, r)
	if !ok {
		return
	}
	certificate, err := h.service.UpdateCertificate(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, certificate)
}

func (h *Handler) deleteCertificate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCertificate(r.Context(), r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listProgrammingLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListProgrammingLanguages(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, languages)
}

func (h *Handler) createProgrammingLanguage(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[ProgrammingLanguage](w, r)
	if !ok {
		return
	}
	language, err := h.service.CreateProgrammingLanguage(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, language)
}

func (h *Handler) updateProgrammingLanguage(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[ProgrammingLanguage](w, r)
	if !ok {
		return
	}
	language, err := h.service.UpdateProgrammingLanguage(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, language)
}

func (h *Handler) deleteProgrammingLanguage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProgrammingLanguage(r.Context(), r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSpokenLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListSpokenLanguages(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, languages)
}

func (h *Handler) createSpokenLanguage(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[SpokenLanguage](w, r)
	if !ok {
		return
	}
	language, err := h.service.CreateSpokenLanguage(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, language)
}

func (h *Handler) updateSpokenLanguage(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[SpokenLanguage](w, r)
	if !ok {
		return
	}
	language, err := h.service.UpdateSpokenLanguage(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, language)
}

func (h *Handler) deleteSpokenLanguage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSpokenLanguage(r.Context(), r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTechStacks(w http.ResponseWriter, r *http.Request) {
	stacks, err := h.service.ListTechStacks(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stacks)
}

func (h *Handler) createTechStack(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[TechStack](w, r)
	if !ok {
		return
	}
	stack, err := h.service.CreateTechStack(r.Context(), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, stack)
}

func (h *Handler) updateTechStack(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSON[TechStack](w, r)
	if !ok {
		return
	}
	stack, err := h.service.UpdateTechStack(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stack)
}

func (h *Handler) deleteTechStack(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTechStack(r.Context(), r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

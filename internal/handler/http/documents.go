package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Error().Int64("limit", maxBytesErr.Limit).Msg("upload rejected: file too large")
			utils.WriteJSON(w, models.MessageResponse{Message: "file too large"}, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("upload rejected: no file in request")
		utils.WriteJSON(w, models.MessageResponse{Message: "file is required"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	document, err := h.services.Document.Upload(ctx, userID, service.DocumentUpload{
		OriginalName: header.Filename,
		Contents:     file,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType), errors.Is(err, service.ErrEmptyFile):
			log.Err(err).Msg("upload rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: "unsupported or empty file"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during document upload")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UploadResponse{
		Message:  "document uploaded successfully",
		Document: document,
	}, http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	documents, err := h.services.Document.List(ctx, userID, r.URL.Query().Get("mime_type"))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during document listing")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	documentID, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid document id"}, http.StatusBadRequest)
		return
	}

	document, err := h.services.Document.Get(ctx, userID, documentID)
	if err != nil {
		// a document owned by somebody else looks identical to a missing one
		if errors.Is(err, store.ErrDocumentNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: "document not found"}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during document lookup")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// older clients send the display name in place of a username
	if registration.Username == "" {
		registration.Username = registration.Name
	}

	_, err := h.services.Auth.Register(ctx, registration)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			// the message stays generic so callers cannot tell whether the
			// username or the email collided
			log.Error().Msg("registration conflict")
			utils.WriteJSON(w, models.MessageResponse{Message: "user already exists"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "user registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	identifier := request.Identifier
	if identifier == "" {
		identifier = request.Username
	}
	if identifier == "" {
		identifier = request.Email
	}

	foundUser, err := h.services.Auth.Login(ctx, identifier, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Error().Msg("invalid login data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
			// the two causes are logged distinctly above this layer but the
			// response never reveals which part of the credential was wrong
			log.Error().Msg("login rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: "invalid credentials"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.Auth.CreateToken(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, int(h.tokenDuration.Seconds())))

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Message: "login successful",
		Token:   token.SignedString,
		User:    foundUser,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.Auth.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: "user not found"}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user lookup")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

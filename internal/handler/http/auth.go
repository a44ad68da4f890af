package http

import (
	"net/http"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/utils"
	"github.com/cardfolio/cardfolio/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusCreated, "user registered", models.LoginResponse{
		Token: token.SignedString,
		User:  registeredUser.Public(),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "login successful", models.LoginResponse{
		Token: token.SignedString,
		User:  foundUser.Public(),
	})
}

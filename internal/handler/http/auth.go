package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/service"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials provided")
			http.Error(w, "invalid credentials provided", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during operator login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("login", token.Login).Str("role", token.Role).Msg("operator successfully logged in")

	session := models.User{
		Login: token.Login,
		Role:  token.Role,
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, session, http.StatusOK)
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"go.uber.org/zap"
)

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	_, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusConflict, "User already exists")
			return
		}
		h.logger.Error("register failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if h.metrics != nil {
		h.metrics.UsersRegistered.Inc()
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	token, user, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			if h.metrics != nil {
				h.metrics.LoginFailures.Inc()
			}
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  userDTO{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

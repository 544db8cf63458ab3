package http

import (
	"net/http"

	commonhttp "github.com/LEEEUNCHEOL96/sbb-board/internal/common/http"
	userservice "github.com/LEEEUNCHEOL96/sbb-board/internal/user/service"
)

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, http.StatusOK, "signup_form", ViewData{
		"form": SignupForm{},
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	form := parseSignupForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.render.Render(w, http.StatusOK, "signup_form", ViewData{
			"form":   SignupForm{Username: form.Username, Email: form.Email},
			"errors": fieldErrors(err),
		})
		return
	}

	_, err := h.users.Create(r.Context(), userservice.CreateUserInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password1,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	form := parseLoginForm(r)
	if err := h.validate.Struct(form); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "username and password are required", fieldErrorDetails(err))
		return
	}

	token, err := h.identity.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func fieldErrorDetails(err error) map[string]any {
	details := make(map[string]any)
	for field, msg := range fieldErrors(err) {
		details[field] = msg
	}
	return details
}

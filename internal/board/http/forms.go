package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type QuestionForm struct {
	Subject string `validate:"required,max=200"`
	Content string `validate:"required"`
}

type AnswerForm struct {
	Content string `validate:"required"`
}

type SignupForm struct {
	Username  string `validate:"required,min=3,max=25"`
	Password1 string `validate:"required,min=8,max=72"`
	Password2 string `validate:"required,eqfield=Password1"`
	Email     string `validate:"required,email"`
}

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func parseQuestionForm(r *http.Request) QuestionForm {
	return QuestionForm{
		Subject: r.PostFormValue("subject"),
		Content: r.PostFormValue("content"),
	}
}

func parseAnswerForm(r *http.Request) AnswerForm {
	return AnswerForm{
		Content: r.PostFormValue("content"),
	}
}

func parseSignupForm(r *http.Request) SignupForm {
	return SignupForm{
		Username:  r.PostFormValue("username"),
		Password1: r.PostFormValue("password1"),
		Password2: r.PostFormValue("password2"),
		Email:     r.PostFormValue("email"),
	}
}

func parseLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

// fieldErrors flattens validator output into per-field messages the form view
// can annotate.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "invalid form submission"
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "email":
		return "must be a valid email address"
	case "eqfield":
		return "passwords do not match"
	default:
		return "invalid value"
	}
}

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	answerservice "github.com/LEEEUNCHEOL96/sbb-board/internal/answer/service"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	commonhttp "github.com/LEEEUNCHEOL96/sbb-board/internal/common/http"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/identity"
	questiondomain "github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	questionservice "github.com/LEEEUNCHEOL96/sbb-board/internal/question/service"
	userservice "github.com/LEEEUNCHEOL96/sbb-board/internal/user/service"
)

type Handler struct {
	questions *questionservice.QuestionService
	answers   *answerservice.AnswerService
	users     *userservice.UserService
	identity  *identity.Service
	render    Renderer
	validate  *validator.Validate
	errors    *commonhttp.ErrorHandler
	log       *logger.Logger
}

type HandlerDeps struct {
	Questions *questionservice.QuestionService
	Answers   *answerservice.AnswerService
	Users     *userservice.UserService
	Identity  *identity.Service
	Render    Renderer
	Log       *logger.Logger
}

func NewHandler(deps HandlerDeps) http.Handler {
	h := &Handler{
		questions: deps.Questions,
		answers:   deps.Answers,
		users:     deps.Users,
		identity:  deps.Identity,
		render:    deps.Render,
		validate:  newValidator(),
		errors:    commonhttp.NewErrorHandler(deps.Log),
		log:       deps.Log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /hello", h.hello)
	mux.HandleFunc("GET /question/list", h.questionList)
	mux.HandleFunc("GET /question/detail/{id}", h.questionDetail)
	mux.HandleFunc("GET /question/create", identity.RequireAuth(h.questionCreateForm))
	mux.HandleFunc("POST /question/create", identity.RequireAuth(h.questionCreate))
	mux.HandleFunc("GET /question/modify/{id}", identity.RequireAuth(h.questionModifyForm))
	mux.HandleFunc("POST /question/modify/{id}", identity.RequireAuth(h.questionModify))
	mux.HandleFunc("GET /question/delete/{id}", identity.RequireAuth(h.questionDelete))
	mux.HandleFunc("GET /question/vote/{id}", identity.RequireAuth(h.questionVote))
	mux.HandleFunc("POST /answer/create/{id}", identity.RequireAuth(h.answerCreate))
	mux.HandleFunc("GET /user/signup", h.signupForm)
	mux.HandleFunc("POST /user/signup", h.signup)
	mux.HandleFunc("POST /user/login", h.login)
	mux.HandleFunc("/health", commonhttp.HealthHandler(deps.Log))
	return mux
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/question/list", http.StatusFound)
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	commonhttp.WriteText(w, http.StatusOK, "Hello World !")
}

func (h *Handler) questionList(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	kw := r.URL.Query().Get("kw")

	paging, err := h.questions.GetList(r.Context(), page, kw)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	h.render.Render(w, http.StatusOK, "question_list", ViewData{
		"paging": paging,
		"kw":     kw,
	})
}

func (h *Handler) questionDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	question, err := h.questions.GetQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	answers, err := h.answers.ListForQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	h.render.Render(w, http.StatusOK, "question_detail", ViewData{
		"question":   question,
		"answers":    answers,
		"answerForm": AnswerForm{},
	})
}

func (h *Handler) questionCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, http.StatusOK, "question_form", ViewData{
		"form": QuestionForm{},
	})
}

func (h *Handler) questionCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.FromContext(r.Context())

	form := parseQuestionForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.render.Render(w, http.StatusOK, "question_form", ViewData{
			"form":   form,
			"errors": fieldErrors(err),
		})
		return
	}

	author, err := h.users.GetUser(r.Context(), principal.Username)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if _, err := h.questions.Create(r.Context(), form.Subject, form.Content, author); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/question/list", http.StatusFound)
}

func (h *Handler) questionModifyForm(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.FromContext(r.Context())

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	question, err := h.questions.GetQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if !isAuthor(question, principal) {
		h.errors.HandleError(w, r, commonerrors.ErrModifyDenied)
		return
	}

	h.render.Render(w, http.StatusOK, "question_form", ViewData{
		"form": QuestionForm{
			Subject: question.Subject,
			Content: question.Content,
		},
	})
}

func (h *Handler) questionModify(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.FromContext(r.Context())

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	form := parseQuestionForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.render.Render(w, http.StatusOK, "question_form", ViewData{
			"form":   form,
			"errors": fieldErrors(err),
		})
		return
	}

	question, err := h.questions.GetQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if !isAuthor(question, principal) {
		h.errors.HandleError(w, r, commonerrors.ErrModifyDenied)
		return
	}

	if err := h.questions.Modify(r.Context(), question, form.Subject, form.Content); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/question/detail/%d", id), http.StatusFound)
}

func (h *Handler) questionDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.FromContext(r.Context())

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	question, err := h.questions.GetQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if !isAuthor(question, principal) {
		h.errors.HandleError(w, r, commonerrors.ErrDeleteDenied)
		return
	}

	if err := h.questions.Delete(r.Context(), question); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// questionVote registers the vote and answers with the bare updated count, for
// in-page counter updates.
func (h *Handler) questionVote(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.FromContext(r.Context())

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	question, err := h.questions.GetQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	voter, err := h.users.GetUser(r.Context(), principal.Username)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	count, err := h.questions.Vote(r.Context(), question, voter)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteText(w, http.StatusOK, strconv.Itoa(count))
}

func (h *Handler) answerCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.FromContext(r.Context())

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	question, err := h.questions.GetQuestion(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	form := parseAnswerForm(r)
	if err := h.validate.Struct(form); err != nil {
		answers, listErr := h.answers.ListForQuestion(r.Context(), id)
		if listErr != nil {
			h.errors.HandleError(w, r, listErr)
			return
		}
		h.render.Render(w, http.StatusOK, "question_detail", ViewData{
			"question":   question,
			"answers":    answers,
			"answerForm": form,
			"errors":     fieldErrors(err),
		})
		return
	}

	author, err := h.users.GetUser(r.Context(), principal.Username)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if _, err := h.answers.Create(r.Context(), question, form.Content, author); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/question/detail/%d", id), http.StatusFound)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidPath, "invalid question id", nil)
		return 0, false
	}
	return id, true
}

func isAuthor(q questiondomain.Question, p identity.Principal) bool {
	return q.Author != nil && q.Author.Username == p.Username
}

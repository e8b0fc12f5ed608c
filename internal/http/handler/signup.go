package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"signup/internal/http/handler/middleware"
	"signup/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Index  = "GET /{$}"
	Signup = "POST /signup"
)

type SignupHandler struct {
	logs       *zap.SugaredLogger
	staticFile string
	signup     SignupService
}

func NewSignupHandler(logger *zap.SugaredLogger, staticFile string, signupService SignupService) *SignupHandler {
	return &SignupHandler{
		logs:       logger,
		staticFile: staticFile,
		signup:     signupService,
	}
}

// HandleIndex serves the signup form page from disk.
func (h *SignupHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	page, err := os.ReadFile(h.staticFile)
	if err != nil {
		code, msg := http.StatusInternalServerError, internalErr
		if errors.Is(err, fs.ErrNotExist) {
			code, msg = http.StatusNotFound, notFoundErr
		}

		h.respond(w, msg, code, requestId)
		h.logs.Errorw("failed to read static page",
			"error", err,
			"file", h.staticFile,
			"handler", Index,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		h.logs.Errorw("failed to write static page",
			"error", err,
			"handler", Index,
			"request_id", requestId)
	}
}

// HandleSignup stores the submitted form. Every failure collapses into a plain 500.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	form, err := payload.DecodeSignupForm(r)
	if err != nil {
		h.respond(w, internalErr, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to decode signup form",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	if err := h.signup.Register(r.Context(), form.ToCoreSignupMessage()); err != nil {
		h.respond(w, internalErr, http.StatusInternalServerError, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	h.respond(w, signupOK, http.StatusOK, requestId)
}

func (h *SignupHandler) respond(w http.ResponseWriter, message string, code int, requestId string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(message)); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

package api

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/justinwb/project-ideas-backend/database"
	"github.com/justinwb/project-ideas-backend/errs"
	"github.com/justinwb/project-ideas-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]+$`)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	sessions  SessionManager
}

func newAuthHandler(userRepo *database.UserRepo, sessions SessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		sessions:  sessions,
	}
}

// registerPayload is the typed form for /on_register
type registerPayload struct {
	Username string
	Email    string
	Password string
}

func (p registerPayload) validate() error {
	if p.Username == "" {
		return errs.NewMissingRequiredFieldError("username")
	}
	if p.Email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if !emailPattern.MatchString(p.Email) {
		return errs.NewInvalidFieldError("email", "not a valid email address")
	}
	if p.Password == "" {
		return errs.NewMissingRequiredFieldError("password")
	}
	return nil
}

// register creates a user from the submitted form, hashes the password and
// logs the new user in. Duplicate usernames are accepted.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}

		payload := registerPayload{
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}
		if err := payload.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("hashing password"))
			return
		}

		user := models.User{
			Username: payload.Username,
			Email:    payload.Email,
			Password: string(hash),
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		cookie, err := h.sessions.Issue(user.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("issuing session"))
			return
		}
		http.SetCookie(w, cookie)

		h.logger.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("user registered")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// login verifies the submitted credentials and sets the session. Unknown
// usernames and wrong passwords both come back as an explicit 401.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("username"))
			return
		}
		if password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		user, err := h.userRepo.FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewUnauthorizedError("invalid username or password"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid username or password"))
			return
		}

		cookie, err := h.sessions.Issue(user.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("issuing session"))
			return
		}
		http.SetCookie(w, cookie)

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// logout clears the session unconditionally
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, h.sessions.Clear())
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

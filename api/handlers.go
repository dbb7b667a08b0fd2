package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/justinwb/project-ideas-backend/database"
	"github.com/justinwb/project-ideas-backend/errs"
	"github.com/justinwb/project-ideas-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(database database.Database, sessions SessionManager, images *storage.ImageStore) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.UserRepo(), sessions),
		projectHandler: newProjectHandler(database.ProjectRepo(), database.CommentRepo(), database.UserRepo(), images),
		commentHandler: newCommentHandler(database.CommentRepo(), database.ProjectRepo()),
	}
}

// idParam parses a positive integer route parameter
func idParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

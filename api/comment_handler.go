package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/justinwb/project-ideas-backend/database"
	"github.com/justinwb/project-ideas-backend/errs"
	"github.com/justinwb/project-ideas-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	projectRepo *database.ProjectRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, projectRepo *database.ProjectRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
	}
}

// addComment creates a comment owned by the current user on an existing
// project.
func (h commentHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}
		content := r.PostFormValue("content")
		if content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		comment := models.Comment{
			Content:   content,
			AuthorID:  userID,
			ProjectID: projectID,
		}
		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/view_project/%d", projectID), http.StatusSeeOther)
	}
}

// deleteComment removes a comment, but only for its author. Deleting
// another user's comment is Forbidden and leaves the comment in place.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		commentID, err := idParam(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("comment"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "comment", err))
			return
		}

		if comment.ProjectID != projectID {
			h.responder.WriteError(w, errs.NewNotFound("comment"))
			return
		}

		if comment.AuthorID != userID {
			h.responder.WriteError(w, errs.NewForbiddenError("cannot delete another user's comment"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}

		h.logger.Info().Uint("commentID", commentID).Uint("userID", userID).Msg("comment deleted")
		http.Redirect(w, r, fmt.Sprintf("/view_project/%d", projectID), http.StatusFound)
	}
}

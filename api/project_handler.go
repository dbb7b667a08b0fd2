package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/justinwb/project-ideas-backend/database"
	"github.com/justinwb/project-ideas-backend/errs"
	"github.com/justinwb/project-ideas-backend/models"
	"github.com/justinwb/project-ideas-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const maxUploadBytes = 10 << 20 // 10MB multipart memory limit

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	commentRepo *database.CommentRepo
	userRepo    *database.UserRepo
	images      *storage.ImageStore
}

func newProjectHandler(projectRepo *database.ProjectRepo, commentRepo *database.CommentRepo, userRepo *database.UserRepo, images *storage.ImageStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		images:      images,
	}
}

// ProjectListing is a list of projects plus, for authenticated viewers, the
// set of project ids they have pinned so the presentation layer can mark
// pinned items.
type ProjectListing struct {
	Projects []*models.Project `json:"projects"`
	Pinned   []uint            `json:"pinned,omitempty"`
	Total    int               `json:"total"`
}

// ProjectDetail is one project with its comments and, when authenticated,
// the viewing user.
type ProjectDetail struct {
	Project  *models.Project   `json:"project"`
	Comments []*models.Comment `json:"comments"`
	Viewer   *models.User      `json:"viewer,omitempty"`
}

// listing builds a ProjectListing for the given projects, attaching the
// viewer's pinned set when a session is present.
func (h projectHandler) listing(r *http.Request, projects []*models.Project) (ProjectListing, error) {
	response := ProjectListing{Projects: projects, Total: len(projects)}

	if userID, ok := ctxUserID(r.Context()); ok {
		pinned, err := h.projectRepo.PinnedIDs(userID)
		if err != nil {
			return ProjectListing{}, wrapDatabaseError("find pins for", "user", err)
		}
		response.Pinned = pinned
	}
	return response, nil
}

// byPopularity serves the home listing: every project ordered by like
// count, most liked first.
func (h projectHandler) byPopularity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.AllByPopularity()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		response, err := h.listing(r, projects)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, response)
	}
}

// byDate serves the recency listing, newest project first
func (h projectHandler) byDate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.AllByRecency()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		response, err := h.listing(r, projects)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, response)
	}
}

// myProjects lists the projects posted by the current user
func (h projectHandler) myProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projects, err := h.projectRepo.AllByAuthor(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectListing{Projects: projects, Total: len(projects)})
	}
}

// projectForm acknowledges that the session holder may post a project. The
// form itself is rendered client-side.
func (h projectHandler) projectForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"upload": "/on_add_project",
			"fields": []string{"image", "title", "description", "instructions"},
		})
	}
}

// addProject stores the uploaded image under its original filename and
// creates the project row with the current user as author. The file write
// and the database insert share no transaction; a failure between the two
// can leave an orphaned file.
func (h projectHandler) addProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		title := r.FormValue("title")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		defer file.Close()

		stored, err := h.images.Save(file, header.Filename)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to store image")
			h.responder.WriteError(w, errs.NewInternalError("storing image"))
			return
		}

		project := models.Project{
			Image:        stored,
			Title:        title,
			Description:  r.FormValue("description"),
			Instructions: r.FormValue("instructions"),
			AuthorID:     userID,
		}
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Uint("projectID", project.ID).Uint("authorID", userID).Msg("project created")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// viewProject serves the detail view: the project, its comments and, when
// authenticated, the viewing user.
func (h projectHandler) viewProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.findProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		response := ProjectDetail{Project: project, Comments: comments}
		if userID, ok := ctxUserID(r.Context()); ok {
			viewer, err := h.userRepo.FindByID(userID)
			if err == nil {
				response.Viewer = viewer
			}
		}

		h.responder.WriteJSON(w, response)
	}
}

// like adds the (user, project) pair to the likes relation if absent and
// bumps the counter only on actual insertion, so repeated likes cannot
// inflate it.
func (h projectHandler) like() http.HandlerFunc {
	return h.likeAction("like", func(userID, projectID uint) error {
		_, err := h.projectRepo.Like(userID, projectID)
		return err
	})
}

// unlike removes the pair if present; an absent pair is a no-op
func (h projectHandler) unlike() http.HandlerFunc {
	return h.likeAction("unlike", h.projectRepo.Unlike)
}

// pin bookmarks the project for the current user. Idempotent.
func (h projectHandler) pin() http.HandlerFunc {
	return h.likeAction("pin", h.projectRepo.Pin)
}

// unpin removes the bookmark; an absent pair is a no-op
func (h projectHandler) unpin() http.HandlerFunc {
	return h.likeAction("unpin", h.projectRepo.Unpin)
}

// likeAction is the shared shape of like/unlike/pin/unpin: resolve the
// session and the project, apply the relation change, redirect back to the
// detail view.
func (h projectHandler) likeAction(name string, apply func(userID, projectID uint) error) http.HandlerFunc {
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

		if _, err := h.findProject(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := apply(userID, projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError(name, "project", err))
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/view_project/%d", projectID), http.StatusFound)
	}
}

// findProject loads a project, translating a missing record into a 404
func (h projectHandler) findProject(projectID uint) (*models.Project, error) {
	project, err := h.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, wrapDatabaseError("find", "project", err)
	}
	return project, nil
}

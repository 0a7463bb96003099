package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/devshelf/devshelf/internal/catalog"
	"github.com/devshelf/devshelf/internal/flash"
	"github.com/devshelf/devshelf/internal/middleware"
	"github.com/devshelf/devshelf/internal/repository"
	"github.com/gin-gonic/gin"
)

const dashboardRecentLimit = 5

// ProjectHandler serves the dashboard and the owner-scoped project pages.
type ProjectHandler struct {
	projects *catalog.Service
}

func NewProjectHandler(projects *catalog.Service) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) Dashboard(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	recent, err := h.projects.Recent(user.ID, dashboardRecentLimit)

	if err != nil {
		log.Printf("failed to load recent projects: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	render(ctx, http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Projects": recent,
	})
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	projects, err := h.projects.List(user.ID)

	if err != nil {
		log.Printf("failed to list projects: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	render(ctx, http.StatusOK, "projects.html", gin.H{
		"Title":    "Projects",
		"Projects": projects,
	})
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	fields := catalog.ProjectFields{
		Title:            ctx.PostForm("title"),
		Description:      ctx.PostForm("description"),
		TechStack:        ctx.PostForm("tech_stack"),
		FeatureChecklist: ctx.PostForm("feature_checklist"),
		DeploymentURL:    ctx.PostForm("deployment_url"),
		Status:           ctx.PostForm("status"),
		IsPublic:         ctx.PostForm("is_public") == "on",
	}

	if _, err := h.projects.Create(user.ID, fields); err != nil {
		if errors.Is(err, catalog.ErrTitleRequired) {
			flash.Set(ctx, "danger", "Project title is required.")
			ctx.Redirect(http.StatusFound, "/dashboard")
			return
		}
		log.Printf("failed to create project: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flash.Set(ctx, "success", "Project created.")
	ctx.Redirect(http.StatusFound, "/projects")
}

func (h *ProjectHandler) ShowEdit(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := parseProjectID(ctx)

	if err != nil {
		h.redirectNotFound(ctx)
		return
	}

	project, err := h.projects.GetOwned(user.ID, id)

	if err != nil {
		h.handleCatalogError(ctx, err)
		return
	}

	render(ctx, http.StatusOK, "edit_project.html", gin.H{
		"Title":   "Edit " + project.Title,
		"Project": project,
	})
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := parseProjectID(ctx)

	if err != nil {
		h.redirectNotFound(ctx)
		return
	}

	update := catalog.ProjectUpdate{
		Title:            postFormPtr(ctx, "title"),
		Description:      postFormPtr(ctx, "description"),
		TechStack:        postFormPtr(ctx, "tech_stack"),
		FeatureChecklist: postFormPtr(ctx, "feature_checklist"),
		DeploymentURL:    postFormPtr(ctx, "deployment_url"),
		Status:           postFormPtr(ctx, "status"),
	}

	// Unchecked checkboxes are absent from the form body, so visibility is
	// always overwritten on edit, matching the submitted state of the page.
	isPublic := ctx.PostForm("is_public") == "on"
	update.IsPublic = &isPublic

	if _, err := h.projects.Edit(user.ID, id, update); err != nil {
		if errors.Is(err, catalog.ErrTitleRequired) {
			flash.Set(ctx, "danger", "Project title is required.")
			ctx.Redirect(http.StatusFound, "/projects/"+strconv.FormatUint(uint64(id), 10)+"/edit")
			return
		}
		h.handleCatalogError(ctx, err)
		return
	}

	flash.Set(ctx, "success", "Project updated.")
	ctx.Redirect(http.StatusFound, "/projects")
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := parseProjectID(ctx)

	if err != nil {
		h.redirectNotFound(ctx)
		return
	}

	if err := h.projects.Delete(user.ID, id); err != nil {
		h.handleCatalogError(ctx, err)
		return
	}

	flash.Set(ctx, "info", "Project deleted.")
	ctx.Redirect(http.StatusFound, "/projects")
}

// handleCatalogError maps ownership failures and missing ids to one identical
// response, so a non-owner cannot tell whether a project id exists.
func (h *ProjectHandler) handleCatalogError(ctx *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, catalog.ErrNotOwner) {
		h.redirectNotFound(ctx)
		return
	}
	log.Printf("project operation failed: %v", err)
	ctx.String(http.StatusInternalServerError, "Internal server error")
}

func (h *ProjectHandler) redirectNotFound(ctx *gin.Context) {
	flash.Set(ctx, "danger", "Project not found.")
	ctx.Redirect(http.StatusFound, "/projects")
}

func parseProjectID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func postFormPtr(ctx *gin.Context, key string) *string {
	if value, ok := ctx.GetPostForm(key); ok {
		return &value
	}
	return nil
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"inquiry-console/internal/http/middleware"
	"inquiry-console/internal/model"
	"inquiry-console/internal/service"
)

type Handler struct {
	auth      *service.AuthService
	analytics *service.AnalyticsService
	directory *service.DirectoryService
	email     *service.EmailService
	log       zerolog.Logger
}

func NewHandler(auth *service.AuthService, analytics *service.AnalyticsService, directory *service.DirectoryService, email *service.EmailService, log zerolog.Logger) *Handler {
	return &Handler{
		auth:      auth,
		analytics: analytics,
		directory: directory,
		email:     email,
		log:       log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	r.GET("/health", h.health)

	r.POST("/auth/signin", h.signIn)
	r.POST("/auth/signout", authMiddleware, h.signOut)

	protected := r.Group("/")
	protected.Use(authMiddleware, middleware.RequireAdmin())

	protected.GET("/analytics/dashboard", h.getDashboard)
	protected.GET("/analytics/inquiries", h.getInquiryAnalytics)

	protected.GET("/data/users-inquiries", h.listUsersInquiries)
	protected.GET("/data/users/:userId", h.getUser)
	protected.GET("/data/inquiries/:inquiryId", h.getInquiry)

	protected.GET("/admin/email-templates", h.listTemplates)
	protected.POST("/admin/email-templates", h.createTemplate)
	protected.GET("/admin/email-templates/:templateId", h.getTemplate)
	protected.PUT("/admin/email-templates/:templateId", h.updateTemplate)
	protected.DELETE("/admin/email-templates/:templateId", h.deleteTemplate)
	protected.POST("/admin/emails/send", h.sendEmail)
	protected.GET("/admin/emails/history", h.getEmailHistory)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "ok"}))
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	User    model.Principal `json:"user"`
	Session model.Session   `json:"session"`
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return
	}

	verr := &model.ValidationError{}
	if strings.TrimSpace(req.Email) == "" {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "email", Message: "is required"})
	}
	if req.Password == "" {
		verr.Fields = append(verr.Fields, model.FieldError{Field: "password", Message: "is required"})
	}
	if len(verr.Fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, validationResponse(verr))
		return
	}

	principal, session, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(signInResponse{
		User:    principal,
		Session: session,
	}))
}

func (h *Handler) signOut(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), principal); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "signed out"}))
}

func (h *Handler) getDashboard(c *gin.Context) {
	metrics, err := h.analytics.GetDashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(metrics))
}

func (h *Handler) getInquiryAnalytics(c *gin.Context) {
	filter, err := model.ParseInquiryFilter(c.Request.URL.Query())
	if err != nil {
		h.handleError(c, err)
		return
	}

	analytics, err := h.analytics.GetInquiryAnalytics(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(analytics))
}

func (h *Handler) listUsersInquiries(c *gin.Context) {
	filter, err := model.ParseInquiryFilter(c.Request.URL.Query())
	if err != nil {
		h.handleError(c, err)
		return
	}

	page, err := h.directory.GetUsersInquiries(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(page))
}

func (h *Handler) getUser(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	detail, err := h.directory.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(detail))
}

func (h *Handler) getInquiry(c *gin.Context) {
	inquiryID, err := uuid.Parse(strings.TrimSpace(c.Param("inquiryId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid inquiry id"))
		return
	}

	detail, err := h.directory.GetInquiry(c.Request.Context(), inquiryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(detail))
}

func (h *Handler) listTemplates(c *gin.Context) {
	templates, err := h.email.ListTemplates(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(templates))
}

func (h *Handler) createTemplate(c *gin.Context) {
	var input service.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return
	}

	template, err := h.email.CreateTemplate(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(template))
}

func (h *Handler) getTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(strings.TrimSpace(c.Param("templateId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid template id"))
		return
	}

	template, err := h.email.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(template))
}

func (h *Handler) updateTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(strings.TrimSpace(c.Param("templateId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid template id"))
		return
	}

	var input service.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return
	}

	template, err := h.email.UpdateTemplate(c.Request.Context(), templateID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(template))
}

func (h *Handler) deleteTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(strings.TrimSpace(c.Param("templateId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid template id"))
		return
	}

	if err := h.email.DeleteTemplate(c.Request.Context(), templateID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"deleted": true}))
}

func (h *Handler) sendEmail(c *gin.Context) {
	var req model.EmailSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return
	}

	entries, err := h.email.SendEmail(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"results": entries}))
}

func (h *Handler) getEmailHistory(c *gin.Context) {
	page, limit, err := model.ParsePageParams(c.Request.URL.Query())
	if err != nil {
		h.handleError(c, err)
		return
	}

	history, err := h.email.GetHistory(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(history))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, validationResponse(verr))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse("not found"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, errorResponse("forbidden"))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse("invalid credentials"))
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

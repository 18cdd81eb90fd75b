package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	exercises service.ExerciseService
	logger    *logrus.Logger
}

func NewHandler(users service.UserService, exercises service.ExerciseService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:     users,
		exercises: exercises,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.GET("/users", h.getUsers)
		api.POST("/users", h.createUser)
		api.GET("/users/:id", h.getUser)
		api.POST("/users/:id/exercises", h.createExercise)
		api.GET("/users/:id/logs", h.getLogs)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

type createUserRequest struct {
	Username string `json:"username"`
}

type createExerciseRequest struct {
	Description string `json:"description"`
	Duration    any    `json:"duration"`
	Date        string `json:"date"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// getUsers looks up a single user when a username or id query parameter is
// present; otherwise it lists every user. The list branch always succeeds,
// even when empty.
func (h *Handler) getUsers(c *gin.Context) {
	ctx := c.Request.Context()

	if username := c.Query("username"); username != "" {
		user, err := h.users.GetByUsername(ctx, username)
		if err != nil {
			h.fail(c, err)
			return
		}
		respond(c, http.StatusOK, userToResponse(*user))
		return
	}

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			// a non-numeric id cannot match any row
			h.fail(c, service.ErrUserDoesNotExist)
			return
		}
		user, err := h.users.GetByID(ctx, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		respond(c, http.StatusOK, userToResponse(*user))
		return
	}

	users, err := h.users.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	respond(c, http.StatusOK, resp)
}

func (h *Handler) createUser(c *gin.Context) {
	// a missing or malformed body behaves like an empty one; the service
	// reports the missing username
	var req createUserRequest
	_ = c.ShouldBindJSON(&req)

	user, err := h.users.Create(c.Request.Context(), req.Username)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, userToResponse(*user))
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		h.fail(c, service.ErrUserDoesNotExist)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, userToResponse(*user))
}

func (h *Handler) createExercise(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		h.fail(c, service.ErrUserDoesNotExist)
		return
	}

	var req createExerciseRequest
	_ = c.ShouldBindJSON(&req)

	exercise, err := h.exercises.Create(c.Request.Context(), id, service.CreateExerciseInput{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, exerciseToResponse(*exercise))
}

func (h *Handler) getLogs(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		h.fail(c, service.ErrUserDoesNotExist)
		return
	}

	// a limit that does not parse falls back to the repository default
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		limit = 0
	}

	result, err := h.exercises.Logs(c.Request.Context(), id, c.Query("from"), c.Query("to"), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, logsToResponse(result))
}

// userIDParam reads the :id path parameter. A non-numeric value is treated
// the same as an id that matches no user.
func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func respond(c *gin.Context, code int, data any) {
	c.Header("Cache-Control", "max-age: 0, no-cache")
	c.JSON(code, successEnvelope{Status: "ok", Data: data})
}

// fail translates an expected service error into its HTTP status and message.
// Anything else is an internal failure: logged, surfaced as a bare 500.
func (h *Handler) fail(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	h.logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type ExerciseResponse struct {
	ExerciseID  int64  `json:"exerciseId"`
	UserID      int64  `json:"userId"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

type LogEntry struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

// LogsResponse merges the user's own fields with the log page and total count
// at the top level.
type LogsResponse struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Logs     []LogEntry `json:"logs"`
	Count    int64      `json:"count"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username}
}

func exerciseToResponse(e domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ExerciseID:  e.ExerciseID,
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	}
}

func logsToResponse(result *service.LogsResult) LogsResponse {
	logs := make([]LogEntry, len(result.Logs))
	for i, log := range result.Logs {
		logs[i] = LogEntry{
			ID:          log.ID,
			Description: log.Description,
			Duration:    log.Duration,
			Date:        log.Date,
		}
	}
	return LogsResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Logs:     logs,
		Count:    result.Count,
	}
}

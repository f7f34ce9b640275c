package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/diagnosis"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/logger"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/models"
)

// SessionHeader carries the session identifier. Requests without one (or
// with an unknown one) get a fresh session, echoed back in the response.
const SessionHeader = "X-Session-ID"

// DefaultBodyPart is assumed when the client does not say which classifier
// to use.
const DefaultBodyPart = "Chest"

// Default request handling limits.
const (
	defaultMaxImageSize   = 10 * 1024 * 1024 // 10MB
	defaultPredictTimeout = 60 * time.Second
	defaultChatTimeout    = 120 * time.Second
)

// Handler exposes the diagnosis and chat surfaces over HTTP
type Handler struct {
	sessions     *diagnosis.Store
	scans        *ScanProcessor
	chats        *ChatProcessor
	maxImageSize int64
	log          *logger.Logger
}

// NewHandler creates the API handler
func NewHandler(sessions *diagnosis.Store, scans *ScanProcessor, chats *ChatProcessor, maxImageSize int64, log *logger.Logger) *Handler {
	if maxImageSize == 0 {
		maxImageSize = defaultMaxImageSize
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		sessions:     sessions,
		scans:        scans,
		chats:        chats,
		maxImageSize: maxImageSize,
		log:          log,
	}
}

// RegisterRoutes registers the API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/predict", h.HandlePredict)
	r.POST("/chat", h.HandleChat)
	r.GET("/diagnosis", h.HandleDiagnosis)
	r.GET("/api/v1/health", h.HandleHealthCheck)
}

// session resolves the request's diagnosis context and echoes the session id
func (h *Handler) session(c *gin.Context) *diagnosis.Context {
	id, dctx := h.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, id)
	return dctx
}

// HandlePredict classifies an uploaded image
func (h *Handler) HandlePredict(c *gin.Context) {
	dctx := h.session(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image file is required"})
		return
	}
	if fileHeader.Size > h.maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image exceeds the upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read uploaded file"})
		return
	}

	bodyPart := c.DefaultPostForm("bodyPart", DefaultBodyPart)

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultPredictTimeout)
	defer cancel()

	response, err := h.scans.ProcessScan(ctx, data, bodyPart, dctx)
	if err != nil {
		// Decode, inference and generation failures degrade to an error
		// payload; clients check the error key, not the status code.
		h.log.Error("predict failed", "body_part", bodyPart, "error", err)
		c.JSON(http.StatusOK, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleChat answers a chat message against the session's diagnosis
func (h *Handler) HandleChat(c *gin.Context) {
	dctx := h.session(c)

	var request models.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "message is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultChatTimeout)
	defer cancel()

	response, err := h.chats.ProcessMessage(ctx, request.Message, dctx)
	if err != nil {
		h.log.Error("chat failed", "error", err)
		c.JSON(http.StatusOK, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: response})
}

// HandleDiagnosis returns the session's current diagnosis without re-running inference
func (h *Handler) HandleDiagnosis(c *gin.Context) {
	dctx := h.session(c)
	c.JSON(http.StatusOK, SnapshotResponse(dctx.Snapshot()))
}

// HandleHealthCheck provides a basic health check endpoint
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

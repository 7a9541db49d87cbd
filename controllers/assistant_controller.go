package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// SessionHeader identifies one chat widget; each session may have only one
// question in flight.
const SessionHeader = "X-Chat-Session"

type ChatPayload struct {
	Message string `json:"message" binding:"required"`
}

type AssistantController struct {
	Advisor *services.AdvisoryService
	log     zerolog.Logger
}

func NewAssistantController(advisor *services.AdvisoryService, log zerolog.Logger) *AssistantController {
	return &AssistantController{Advisor: advisor, log: log}
}

// POST /api/assistant/chat
func (ctrl *AssistantController) Chat(c *gin.Context) {
	var payload ChatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	session := c.GetHeader(SessionHeader)
	if session == "" {
		session = c.ClientIP()
	}

	reply, err := ctrl.Advisor.Ask(c.Request.Context(), session, payload.Message)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reply)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-frontdesk/billing"
	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateRoomPayload struct {
	Number string          `json:"number"`
	Type   models.RoomType `json:"type" binding:"omitempty,roomtype"`
	Price  *int            `json:"price" binding:"omitempty,min=0"`
}

// UpdateRoomPayload: omitted fields keep their current value.
type UpdateRoomPayload struct {
	Number *string          `json:"number"`
	Type   *models.RoomType `json:"type" binding:"omitempty,roomtype"`
	Price  *int             `json:"price" binding:"omitempty,min=0"`
}

type ChangeStatusPayload struct {
	Status  models.RoomStatus `json:"status" binding:"required,roomstatus"`
	Confirm bool              `json:"confirm"`
}

type checkOutResponse struct {
	Room models.Room  `json:"room"`
	Bill billing.Bill `json:"bill"`
}

// ---------------------------
// Controller
// ---------------------------

type RoomController struct {
	Desk *services.FrontDeskService
	log  zerolog.Logger
}

func NewRoomController(desk *services.FrontDeskService, log zerolog.Logger) *RoomController {
	return &RoomController{Desk: desk, log: log}
}

// GET /api/rooms?status=&type=
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Status: models.RoomStatus(c.Query("status")),
		Type:   models.RoomType(c.Query("type")),
	}
	if filter.Status == "ALL" {
		filter.Status = ""
	}
	if filter.Type == "ALL" {
		filter.Type = ""
	}
	if filter.Status != "" && !filter.Status.Valid() {
		respondError(c, ctrl.log, lifecycle.ErrUnknownStatus)
		return
	}
	if filter.Type != "" && !filter.Type.Valid() {
		respondError(c, ctrl.log, lifecycle.ErrUnknownRoomType)
		return
	}

	rooms, err := ctrl.Desk.ListRooms(c.Request.Context(), filter)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/stats
func (ctrl *RoomController) GetRoomStats(c *gin.Context) {
	stats, err := ctrl.Desk.Stats(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GET /api/rooms/:id
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	room, err := ctrl.Desk.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload CreateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	if payload.Type == "" {
		payload.Type = models.RoomTypeKing
	}

	room, err := ctrl.Desk.AddRoom(c.Request.Context(), services.NewRoomInput{
		Number: payload.Number,
		Type:   payload.Type,
		Price:  payload.Price,
	})
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// PUT|PATCH /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	var payload UpdateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.Desk.EditRoom(c.Request.Context(), c.Param("id"), services.EditRoomInput{
		Number: payload.Number,
		Type:   payload.Type,
		Price:  payload.Price,
	})
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms/:id/checkin
func (ctrl *RoomController) CheckIn(c *gin.Context) {
	var payload models.GuestInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.Desk.CheckIn(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GET /api/rooms/:id/bill
func (ctrl *RoomController) PreviewBill(c *gin.Context) {
	bill, err := ctrl.Desk.PreviewBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// POST /api/rooms/:id/checkout
func (ctrl *RoomController) CheckOut(c *gin.Context) {
	room, bill, err := ctrl.Desk.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, checkOutResponse{Room: room, Bill: bill})
}

// GET /api/rooms/:id/status-impact?status=
func (ctrl *RoomController) StatusImpact(c *gin.Context) {
	impact, err := ctrl.Desk.StatusImpact(c.Request.Context(), c.Param("id"), models.RoomStatus(c.Query("status")))
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, impact)
}

// PUT /api/rooms/:id/status
func (ctrl *RoomController) ChangeStatus(c *gin.Context) {
	var payload ChangeStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.Desk.ChangeStatus(c.Request.Context(), c.Param("id"), payload.Status, payload.Confirm)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/registry"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type apiError struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: ErrTransitionNotAllowed also matches ErrInvalidState.
var apiErrors = []apiError{
	{lifecycle.ErrEmptyNumber, http.StatusBadRequest, "error.emptyRoomNumber", "房间号不能为空"},
	{lifecycle.ErrDuplicateNumber, http.StatusConflict, "error.duplicateRoomNumber", "房间号已存在"},
	{lifecycle.ErrGuestNameRequired, http.StatusBadRequest, "error.guestNameRequired", "请输入客人姓名"},
	{lifecycle.ErrInvalidPrice, http.StatusBadRequest, "error.invalidPrice", "房价不能为负数"},
	{lifecycle.ErrUnknownRoomType, http.StatusBadRequest, "error.unknownRoomType", "未知的房型"},
	{lifecycle.ErrUnknownStatus, http.StatusBadRequest, "error.unknownStatus", "未知的房间状态"},
	{lifecycle.ErrNotConfirmed, http.StatusPreconditionRequired, "error.confirmationRequired", "修改状态将清除当前入住信息，是否继续？"},
	{lifecycle.ErrTransitionNotAllowed, http.StatusConflict, "error.transitionNotAllowed", "当前状态不允许直接切换到目标状态"},
	{lifecycle.ErrInvalidState, http.StatusConflict, "error.invalidRoomState", "当前房间状态不支持该操作"},
	{registry.ErrRoomNotFound, http.StatusNotFound, "error.roomNotFound", "房间不存在"},
	{services.ErrEmptyQuestion, http.StatusBadRequest, "error.emptyQuestion", "请输入问题"},
	{services.ErrAdvisoryBusy, http.StatusTooManyRequests, "error.assistantBusy", "上一个问题仍在处理中"},
}

func respondError(c *gin.Context, log zerolog.Logger, err error) {
	for _, e := range apiErrors {
		if errors.Is(err, e.target) {
			utils.JSONError(c, e.status, e.code, e.message)
			return
		}
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	utils.JSONError(c, http.StatusInternalServerError, "error.internal", "服务器内部错误")
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "error.invalidPayload",
			"message": "请求参数不正确或缺少必填字段",
			"details": err.Error(),
		},
	})
}

package controllers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-frontdesk/models"
)

var registerOnce sync.Once

// RegisterValidators adds the roomtype/roomstatus tags to gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if err = v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
			return models.RoomType(fl.Field().String()).Valid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("roomstatus", func(fl validator.FieldLevel) bool {
			return models.RoomStatus(fl.Field().String()).Valid()
		})
	})
	return err
}

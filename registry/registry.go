// Package registry stores the authoritative, insertion-ordered list of rooms.
package registry

import (
	"context"
	"errors"

	"hotel-frontdesk/models"
)

var ErrRoomNotFound = errors.New("room not found")

// Registry is the room store. Implementations return copies: mutating a
// returned Room never changes stored state. Rooms are never deleted.
type Registry interface {
	Add(ctx context.Context, room models.Room) error
	Update(ctx context.Context, room models.Room) error
	Get(ctx context.Context, id string) (models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	Ping(ctx context.Context) error
	Close() error
}

package registry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/models"
)

func newSQLiteRegistry(t *testing.T) *SQL {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	reg, err := NewSQL(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })
	return reg
}

func backends(t *testing.T) map[string]Registry {
	return map[string]Registry{
		"memory": NewMemory(),
		"sqlite": newSQLiteRegistry(t),
	}
}

func room(number string) models.Room {
	return models.Room{
		ID:     uuid.NewString(),
		Number: number,
		Type:   models.RoomTypeKing,
		Price:  1280,
		Status: models.StatusVacant,
	}
}

func TestRegistry_AddListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"2403", "2401", "2402"} {
				require.NoError(t, reg.Add(ctx, room(n)))
			}
			rooms, err := reg.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"2403", "2401", "2402"}, models.RoomNumbers(rooms))
		})
	}
}

func TestRegistry_UpdateInPlace(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)

	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			a, b, c := room("1"), room("2"), room("3")
			for _, r := range []models.Room{a, b, c} {
				require.NoError(t, reg.Add(ctx, r))
			}

			b.Status = models.StatusOccupied
			b.Guest = &models.Guest{Name: "张三", Phone: "138", CheckInTime: checkIn}
			require.NoError(t, reg.Update(ctx, b))

			rooms, err := reg.List(ctx)
			require.NoError(t, err)
			require.Len(t, rooms, 3)
			assert.Equal(t, []string{"1", "2", "3"}, models.RoomNumbers(rooms))
			assert.Equal(t, models.StatusVacant, rooms[0].Status)
			assert.Equal(t, models.StatusOccupied, rooms[1].Status)
			require.NotNil(t, rooms[1].Guest)
			assert.Equal(t, "张三", rooms[1].Guest.Name)
			assert.True(t, checkIn.Equal(rooms[1].Guest.CheckInTime))
			assert.Nil(t, rooms[2].Guest)

			b.Status = models.StatusCleaning
			b.Guest = nil
			require.NoError(t, reg.Update(ctx, b))
			got, err := reg.Get(ctx, b.ID)
			require.NoError(t, err)
			assert.Equal(t, models.StatusCleaning, got.Status)
			assert.Nil(t, got.Guest)
		})
	}
}

func TestRegistry_UnknownID(t *testing.T) {
	ctx := context.Background()
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := reg.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrRoomNotFound)
			assert.ErrorIs(t, reg.Update(ctx, room("9")), ErrRoomNotFound)
		})
	}
}

func TestRegistry_DuplicateNumberRejected(t *testing.T) {
	ctx := context.Background()
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, reg.Add(ctx, room("808")))
			err := reg.Add(ctx, room("808"))
			assert.ErrorIs(t, err, lifecycle.ErrDuplicateNumber)

			rooms, err := reg.List(ctx)
			require.NoError(t, err)
			assert.Len(t, rooms, 1)
		})
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := room("501")
			r.Status = models.StatusOccupied
			r.Guest = &models.Guest{Name: "王五"}
			require.NoError(t, reg.Add(ctx, r))

			r.Guest.Name = "changed"
			got, err := reg.Get(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, "王五", got.Guest.Name)

			got.Guest.Name = "changed again"
			again, err := reg.Get(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, "王五", again.Guest.Name)
		})
	}
}

func TestMemory_IndependentInstances(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemory(), NewMemory()
	require.NoError(t, a.Add(ctx, room("1")))

	rooms, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

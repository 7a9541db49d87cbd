package registry

import (
	"context"
	"fmt"
	"sync"

	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/models"
)

// Memory keeps rooms in process memory for the lifetime of the instance.
type Memory struct {
	mu    sync.RWMutex
	rooms []models.Room
	index map[string]int
}

func NewMemory() *Memory {
	return &Memory{index: make(map[string]int)}
}

func (m *Memory) Add(_ context.Context, room models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[room.ID]; ok {
		return fmt.Errorf("room id %s already registered", room.ID)
	}
	for _, r := range m.rooms {
		if r.Number == room.Number {
			return fmt.Errorf("%w: %s", lifecycle.ErrDuplicateNumber, room.Number)
		}
	}
	m.index[room.ID] = len(m.rooms)
	m.rooms = append(m.rooms, room.Clone())
	return nil
}

func (m *Memory) Update(_ context.Context, room models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[room.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, room.ID)
	}
	m.rooms[i] = room.Clone()
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return models.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return m.rooms[i].Clone(), nil
}

func (m *Memory) List(_ context.Context) ([]models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Room, len(m.rooms))
	for i, r := range m.rooms {
		out[i] = r.Clone()
	}
	return out, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

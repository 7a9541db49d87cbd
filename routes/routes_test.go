package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontdesk/billing"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/models"
	"hotel-frontdesk/registry"
	"hotel-frontdesk/services"
)

type fixedCompleter struct{ reply string }

func (f fixedCompleter) Complete(context.Context, string, string) (string, error) {
	return f.reply, nil
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, completer services.Completer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := registry.NewMemory()
	desk := services.NewFrontDeskService(reg, lifecycle.NewEngine(), zerolog.Nop(), 1280)
	advisor := services.NewAdvisoryService(desk, completer, nil, "HotelPro", time.Second, zerolog.Nop())

	r, err := SetupRouter(Handlers{
		Rooms:     controllers.NewRoomController(desk, zerolog.Nop()),
		Assistant: controllers.NewAssistantController(advisor, zerolog.Nop()),
		Health:    controllers.NewHealthController(map[string]controllers.Pinger{"rooms": reg}),
	}, nil, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func createRoom(t *testing.T, r http.Handler, number string) models.Room {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/rooms", gin.H{"number": number, "type": "chess-room", "price": 1280})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Room](t, w).Data
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "frontdesk_http_requests_total")
}

func TestRoomLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t, nil)
	room := createRoom(t, r, "2402")
	assert.Equal(t, models.StatusVacant, room.Status)
	base := "/api/rooms/" + room.ID

	w := do(t, r, http.MethodPost, base+"/checkin", gin.H{"guestName": "张三", "phone": "13800000000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	occupied := decode[models.Room](t, w).Data
	assert.Equal(t, models.StatusOccupied, occupied.Status)
	require.NotNil(t, occupied.Guest)
	assert.Equal(t, "张三", occupied.Guest.Name)

	w = do(t, r, http.MethodGet, base+"/bill", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bill := decode[billing.Bill](t, w).Data
	assert.Equal(t, 1, bill.Nights)
	assert.Equal(t, 1280, bill.AmountDue)

	w = do(t, r, http.MethodPost, base+"/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[struct {
		Room models.Room  `json:"room"`
		Bill billing.Bill `json:"bill"`
	}](t, w).Data
	assert.Equal(t, models.StatusCleaning, out.Room.Status)
	assert.Nil(t, out.Room.Guest)
	assert.Equal(t, 1280, out.Bill.AmountDue)

	// second checkout is rejected; room stays CLEANING
	w = do(t, r, http.MethodPost, base+"/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error.invalidRoomState", decode[any](t, w).Error.Code)

	w = do(t, r, http.MethodPut, base+"/status", gin.H{"status": "VACANT"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusVacant, decode[models.Room](t, w).Data.Status)
}

func TestCreateRoomErrors(t *testing.T) {
	r := newTestRouter(t, nil)
	createRoom(t, r, "808")

	w := do(t, r, http.MethodPost, "/api/rooms", gin.H{"number": " 808 "})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error.duplicateRoomNumber", decode[any](t, w).Error.Code)

	w = do(t, r, http.MethodPost, "/api/rooms", gin.H{"number": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.emptyRoomNumber", decode[any](t, w).Error.Code)

	w = do(t, r, http.MethodPost, "/api/rooms", gin.H{"number": "901", "type": "suite"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.invalidPayload", decode[any](t, w).Error.Code)

	w = do(t, r, http.MethodPost, "/api/rooms", gin.H{"number": "902"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Room](t, w).Data
	assert.Equal(t, models.RoomTypeKing, created.Type)
	assert.Equal(t, 1280, created.Price)

	w = do(t, r, http.MethodGet, "/api/rooms", nil)
	assert.Len(t, decode[[]models.Room](t, w).Data, 2)
}

func TestUpdateRoom(t *testing.T) {
	r := newTestRouter(t, nil)
	a := createRoom(t, r, "2402")
	createRoom(t, r, "2403")

	w := do(t, r, http.MethodPatch, "/api/rooms/"+a.ID, gin.H{"price": 1500})
	require.Equal(t, http.StatusOK, w.Code)
	edited := decode[models.Room](t, w).Data
	assert.Equal(t, 1500, edited.Price)
	assert.Equal(t, "2402", edited.Number)

	w = do(t, r, http.MethodPut, "/api/rooms/"+a.ID, gin.H{"number": "2403"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPatch, "/api/rooms/missing", gin.H{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error.roomNotFound", decode[any](t, w).Error.Code)
}

func TestDestructiveStatusChangeNeedsConfirm(t *testing.T) {
	r := newTestRouter(t, nil)
	room := createRoom(t, r, "2405")
	base := "/api/rooms/" + room.ID
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/checkin", gin.H{"guestName": "李四"}).Code)

	w := do(t, r, http.MethodGet, base+"/status-impact?status=MAINTENANCE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	impact := decode[services.StatusImpact](t, w).Data
	assert.True(t, impact.Destructive)
	assert.True(t, impact.Allowed)
	require.NotNil(t, impact.Guest)
	assert.Equal(t, "李四", impact.Guest.Name)

	w = do(t, r, http.MethodPut, base+"/status", gin.H{"status": "MAINTENANCE"})
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = do(t, r, http.MethodGet, base, nil)
	assert.Equal(t, models.StatusOccupied, decode[models.Room](t, w).Data.Status)

	w = do(t, r, http.MethodPut, base+"/status", gin.H{"status": "MAINTENANCE", "confirm": true})
	require.Equal(t, http.StatusOK, w.Code)
	changed := decode[models.Room](t, w).Data
	assert.Equal(t, models.StatusMaintenance, changed.Status)
	assert.Nil(t, changed.Guest)

	w = do(t, r, http.MethodPut, base+"/status", gin.H{"status": "BROKEN"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInRequiresGuestName(t *testing.T) {
	r := newTestRouter(t, nil)
	room := createRoom(t, r, "2406")

	w := do(t, r, http.MethodPost, "/api/rooms/"+room.ID+"/checkin", gin.H{"phone": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/rooms/"+room.ID+"/checkin", gin.H{"guestName": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.guestNameRequired", decode[any](t, w).Error.Code)
}

func TestRoomFiltersAndStats(t *testing.T) {
	r := newTestRouter(t, nil)
	a := createRoom(t, r, "2402")
	createRoom(t, r, "2403")
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/rooms/"+a.ID+"/checkin", gin.H{"guestName": "王五"}).Code)

	w := do(t, r, http.MethodGet, "/api/rooms?status=OCCUPIED", nil)
	rooms := decode[[]models.Room](t, w).Data
	require.Len(t, rooms, 1)
	assert.Equal(t, "2402", rooms[0].Number)

	w = do(t, r, http.MethodGet, "/api/rooms?status=ALL&type=chess-room", nil)
	assert.Len(t, decode[[]models.Room](t, w).Data, 2)

	w = do(t, r, http.MethodGet, "/api/rooms?type=penthouse", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/rooms/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.RoomStats](t, w).Data
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[models.StatusOccupied])
	assert.Equal(t, 1, stats.ByStatus[models.StatusVacant])
}

func TestAssistantChat(t *testing.T) {
	r := newTestRouter(t, nil)
	w := do(t, r, http.MethodPost, "/api/assistant/chat", gin.H{"message": "还有空房吗？"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[services.AdvisoryReply](t, w).Data
	assert.True(t, reply.Fallback)
	assert.Equal(t, services.FallbackUnconfigured, reply.Text)

	w = do(t, r, http.MethodPost, "/api/assistant/chat", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r = newTestRouter(t, fixedCompleter{reply: "2403 目前空闲。"})
	w = do(t, r, http.MethodPost, "/api/assistant/chat", gin.H{"message": "还有空房吗？"})
	require.Equal(t, http.StatusOK, w.Code)
	reply = decode[services.AdvisoryReply](t, w).Data
	assert.False(t, reply.Fallback)
	assert.Equal(t, "2403 目前空闲。", reply.Text)
}

package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/models"
)

// roomRow is the table layout. Seq carries insertion order; the guest is
// a nullable JSON document so it disappears with the occupancy.
type roomRow struct {
	Seq       uint                              `gorm:"primaryKey;autoIncrement"`
	RoomID    string                            `gorm:"column:room_id;uniqueIndex;type:varchar(36)"`
	Number    string                            `gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type      string                            `gorm:"column:type;type:varchar(20)"`
	Price     int                               `gorm:"column:price"`
	Status    string                            `gorm:"column:status;type:varchar(20);index"`
	Guest     datatypes.JSONType[*models.Guest] `gorm:"column:guest"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (roomRow) TableName() string { return "rooms" }

func toRow(r models.Room) roomRow {
	var guest *models.Guest
	if r.Guest != nil {
		g := *r.Guest
		guest = &g
	}
	return roomRow{
		RoomID: r.ID,
		Number: r.Number,
		Type:   string(r.Type),
		Price:  r.Price,
		Status: string(r.Status),
		Guest:  datatypes.NewJSONType(guest),
	}
}

func (row roomRow) toRoom() models.Room {
	return models.Room{
		ID:     row.RoomID,
		Number: row.Number,
		Type:   models.RoomType(row.Type),
		Price:  row.Price,
		Status: models.RoomStatus(row.Status),
		Guest:  row.Guest.Data(),
	}.Clone()
}

// SQL is a gorm-backed registry (MySQL in deployment, sqlite in-memory
// for local runs and tests).
type SQL struct {
	db *gorm.DB
}

// NewSQL migrates the rooms table and wraps db.
func NewSQL(db *gorm.DB) (*SQL, error) {
	if err := db.AutoMigrate(&roomRow{}); err != nil {
		return nil, fmt.Errorf("migrate rooms: %w", err)
	}
	return &SQL{db: db}, nil
}

// isDuplicateKey recognises unique-index violations across drivers.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysqldriver.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func (s *SQL) Add(ctx context.Context, room models.Room) error {
	row := toRow(room)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", lifecycle.ErrDuplicateNumber, room.Number)
		}
		return fmt.Errorf("insert room %s: %w", room.Number, err)
	}
	return nil
}

func (s *SQL) Update(ctx context.Context, room models.Room) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row roomRow
		if err := tx.Where("room_id = ?", room.ID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrRoomNotFound, room.ID)
			}
			return err
		}

		next := toRow(room)
		next.Seq = row.Seq
		next.CreatedAt = row.CreatedAt
		if err := tx.Save(&next).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("%w: %s", lifecycle.ErrDuplicateNumber, room.Number)
			}
			return fmt.Errorf("update room %s: %w", room.ID, err)
		}
		return nil
	})
}

func (s *SQL) Get(ctx context.Context, id string) (models.Room, error) {
	var row roomRow
	if err := s.db.WithContext(ctx).Where("room_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
		}
		return models.Room{}, err
	}
	return row.toRoom(), nil
}

func (s *SQL) List(ctx context.Context) ([]models.Room, error) {
	var rows []roomRow
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toRoom())
	}
	return out, nil
}

func (s *SQL) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

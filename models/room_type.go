package models

// RoomType is one of the fixed room categories offered by the property.
type RoomType string

const (
	RoomTypeChess  RoomType = "chess-room"
	RoomTypeKing   RoomType = "king-bed"
	RoomTypeTwin   RoomType = "twin-bed"
	RoomTypeFamily RoomType = "family"
)

// RoomTypes lists every type in display order.
var RoomTypes = []RoomType{RoomTypeChess, RoomTypeKing, RoomTypeTwin, RoomTypeFamily}

var roomTypeLabels = map[RoomType]string{
	RoomTypeChess:  "棋牌房",
	RoomTypeKing:   "大床房",
	RoomTypeTwin:   "双床房",
	RoomTypeFamily: "亲子房",
}

func (t RoomType) String() string {
	return string(t)
}

// Label returns the front-desk display name.
func (t RoomType) Label() string {
	if l, ok := roomTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t RoomType) Valid() bool {
	_, ok := roomTypeLabels[t]
	return ok
}

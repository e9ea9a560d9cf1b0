package house

// House represents one rentable room in the property
type House struct {
	ID        string   `json:"id"`
	Floor     string   `json:"floor"`
	Section   string   `json:"section"`
	RoomName  string   `json:"room_name"`
	RoomType  string   `json:"room_type"`
	Price     int64    `json:"price"`
	IsVacant  bool     `json:"is_vacant"`
	Amenities []string `json:"amenities"`
}

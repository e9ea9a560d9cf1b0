package house

// CreateHouseRequest represents the request body for adding a house
type CreateHouseRequest struct {
	Floor     string   `json:"floor" validate:"required"`
	Section   string   `json:"section" validate:"required"`
	RoomName  string   `json:"room_name" validate:"required"`
	RoomType  string   `json:"room_type" validate:"required"`
	Price     int64    `json:"price" validate:"required,gt=0"`
	Amenities []string `json:"amenities"`
}

// UpdateHouseRequest represents the request body for updating a house
type UpdateHouseRequest struct {
	Floor     *string  `json:"floor,omitempty"`
	Section   *string  `json:"section,omitempty"`
	RoomName  *string  `json:"room_name,omitempty"`
	RoomType  *string  `json:"room_type,omitempty"`
	Price     *int64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Amenities []string `json:"amenities,omitempty"`
}

// SetVacancyRequest represents the request body for the manual vacancy toggle
type SetVacancyRequest struct {
	IsVacant bool `json:"is_vacant"`
}

// SearchFilters narrows the public room search
type SearchFilters struct {
	VacantOnly bool
	RoomType   string
	Floor      string
	Section    string
	MinPrice   *int64
	MaxPrice   *int64
}

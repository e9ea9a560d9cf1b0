package house

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles house data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new house repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new house into the inventory
func (r *Repository) Create(ctx context.Context, req *CreateHouseRequest) (*House, error) {
	query := `
		INSERT INTO houses (id, floor, section, room_name, room_type, price, is_vacant, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
		RETURNING id, floor, section, room_name, room_type, price, is_vacant, amenities
	`

	house := &House{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), req.Floor, req.Section, req.RoomName, req.RoomType, req.Price, pq.Array(req.Amenities),
	).Scan(
		&house.ID,
		&house.Floor,
		&house.Section,
		&house.RoomName,
		&house.RoomType,
		&house.Price,
		&house.IsVacant,
		pq.Array(&house.Amenities),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	return house, nil
}

// GetByID retrieves a house by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*House, error) {
	query := `
		SELECT id, floor, section, room_name, room_type, price, is_vacant, amenities
		FROM houses
		WHERE id = $1
	`

	house := &House{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&house.ID,
		&house.Floor,
		&house.Section,
		&house.RoomName,
		&house.RoomType,
		&house.Price,
		&house.IsVacant,
		pq.Array(&house.Amenities),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	return house, nil
}

// Search retrieves houses matching the filters, ordered floor, section, room
// name (the order the landing page renders rooms in)
func (r *Repository) Search(ctx context.Context, filters *SearchFilters) ([]*House, error) {
	query := `
		SELECT id, floor, section, room_name, room_type, price, is_vacant, amenities
		FROM houses
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filters.VacantOnly {
		query += " AND is_vacant = TRUE"
	}
	if filters.RoomType != "" {
		query += fmt.Sprintf(" AND room_type = $%d", argPos)
		args = append(args, filters.RoomType)
		argPos++
	}
	if filters.Floor != "" {
		query += fmt.Sprintf(" AND floor = $%d", argPos)
		args = append(args, filters.Floor)
		argPos++
	}
	if filters.Section != "" {
		query += fmt.Sprintf(" AND section = $%d", argPos)
		args = append(args, filters.Section)
		argPos++
	}
	if filters.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", argPos)
		args = append(args, *filters.MinPrice)
		argPos++
	}
	if filters.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", argPos)
		args = append(args, *filters.MaxPrice)
		argPos++
	}

	query += " ORDER BY floor, section, room_name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search houses: %w", err)
	}
	defer rows.Close()

	var houses []*House
	for rows.Next() {
		house := &House{}
		if err := rows.Scan(
			&house.ID,
			&house.Floor,
			&house.Section,
			&house.RoomName,
			&house.RoomType,
			&house.Price,
			&house.IsVacant,
			pq.Array(&house.Amenities),
		); err != nil {
			return nil, fmt.Errorf("failed to scan house: %w", err)
		}
		houses = append(houses, house)
	}

	return houses, rows.Err()
}

// Update modifies an existing house
func (r *Repository) Update(ctx context.Context, id string, req *UpdateHouseRequest) (*House, error) {
	query := `
		UPDATE houses
		SET floor = COALESCE($2, floor),
		    section = COALESCE($3, section),
		    room_name = COALESCE($4, room_name),
		    room_type = COALESCE($5, room_type),
		    price = COALESCE($6, price),
		    amenities = COALESCE($7, amenities)
		WHERE id = $1
		RETURNING id, floor, section, room_name, room_type, price, is_vacant, amenities
	`

	var amenities interface{}
	if req.Amenities != nil {
		amenities = pq.Array(req.Amenities)
	}

	house := &House{}
	err := r.db.QueryRowContext(ctx, query,
		id, req.Floor, req.Section, req.RoomName, req.RoomType, req.Price, amenities,
	).Scan(
		&house.ID,
		&house.Floor,
		&house.Section,
		&house.RoomName,
		&house.RoomType,
		&house.Price,
		&house.IsVacant,
		pq.Array(&house.Amenities),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update house: %w", err)
	}

	return house, nil
}

// SetVacancy flips the manual vacancy flag on a house
func (r *Repository) SetVacancy(ctx context.Context, id string, isVacant bool) (*House, error) {
	query := `
		UPDATE houses
		SET is_vacant = $2
		WHERE id = $1
		RETURNING id, floor, section, room_name, room_type, price, is_vacant, amenities
	`

	house := &House{}
	err := r.db.QueryRowContext(ctx, query, id, isVacant).Scan(
		&house.ID,
		&house.Floor,
		&house.Section,
		&house.RoomName,
		&house.RoomType,
		&house.Price,
		&house.IsVacant,
		pq.Array(&house.Amenities),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set vacancy: %w", err)
	}

	return house, nil
}

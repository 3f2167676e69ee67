package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"classfinder/internal/app/models"
	"classfinder/internal/pkg/apperrors"
	"classfinder/internal/pkg/dberrors"
	"classfinder/internal/pkg/logger"
)

// RoomRepository handles room database operations
type RoomRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db Querier) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every room joined with its building.
func (r *RoomRepository) GetAll(ctx context.Context) ([]models.RoomWithBuilding, error) {
	sql, args, err := r.sb.Select(
		"r.building_number", "r.name", "r.number", "r.floor", "r.capacity",
		"b.number", "b.name", "b.other_names", "b.place_id").
		From("rooms AS r").
		Join("buildings AS b ON b.number = r.building_number").
		OrderBy("b.number ASC", "r.name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all rooms SQL")
		return nil, fmt.Errorf("failed to build rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all rooms query")
		return nil, fmt.Errorf("%w: error querying rooms: %v", apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	rooms := []models.RoomWithBuilding{}
	for rows.Next() {
		var room models.RoomWithBuilding
		if err := rows.Scan(
			&room.BuildingNumber, &room.Name, &room.Room.Number, &room.Floor, &room.Capacity,
			&room.Building.Number, &room.Building.Name, &room.Building.OtherNames, &room.Building.PlaceID,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning room row")
			return nil, fmt.Errorf("%w: error scanning room row: %v", apperrors.ErrQueryFailed, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating room rows")
		return nil, fmt.Errorf("%w: error iterating room rows: %v", apperrors.ErrQueryFailed, err)
	}

	return rooms, nil
}

// Insert creates a room row under an existing building.
func (r *RoomRepository) Insert(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Insert("rooms").
		Columns("building_number", "name", "number", "floor", "capacity").
		Values(room.BuildingNumber, room.Name, room.Number, room.Floor, room.Capacity).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert room SQL")
		return fmt.Errorf("failed to build insert room query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBuildingNotFound
		}
		logger.Error().Err(err).Str("room", room.Name).Msg("Error executing insert room query")
		return fmt.Errorf("%w: error inserting room: %v", apperrors.ErrQueryFailed, err)
	}

	return nil
}

// ExistsByName reports whether a room with the given name already exists.
// The loader uses this to skip meeting places it has already resolved.
func (r *RoomRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("rooms").
		Where(squirrel.Eq{"name": name}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building room exists SQL")
		return false, fmt.Errorf("failed to build room existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("room", name).Msg("Error checking room existence")
		return false, fmt.Errorf("%w: error checking room existence: %v", apperrors.ErrQueryFailed, err)
	}

	return exists, nil
}

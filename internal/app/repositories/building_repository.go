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

// BuildingRepository handles building database operations
type BuildingRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewBuildingRepository creates a new BuildingRepository
func NewBuildingRepository(db Querier) *BuildingRepository {
	return &BuildingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every building, ordered by number for deterministic output.
func (r *BuildingRepository) GetAll(ctx context.Context) ([]models.Building, error) {
	sql, args, err := r.sb.Select("number", "name", "other_names", "place_id").
		From("buildings").
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all buildings SQL")
		return nil, fmt.Errorf("failed to build buildings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all buildings query")
		return nil, fmt.Errorf("%w: error querying buildings: %v", apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	buildings := []models.Building{}
	for rows.Next() {
		var building models.Building
		if err := rows.Scan(&building.Number, &building.Name, &building.OtherNames, &building.PlaceID); err != nil {
			logger.Error().Err(err).Msg("Error scanning building row")
			return nil, fmt.Errorf("%w: error scanning building row: %v", apperrors.ErrQueryFailed, err)
		}
		buildings = append(buildings, building)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating building rows")
		return nil, fmt.Errorf("%w: error iterating building rows: %v", apperrors.ErrQueryFailed, err)
	}

	return buildings, nil
}

// Insert creates a building row. A zero Number defers to the identity
// sequence; a non-zero Number is inserted as given.
func (r *BuildingRepository) Insert(ctx context.Context, building *models.Building) (int64, error) {
	builder := r.sb.Insert("buildings")
	if building.Number != 0 {
		builder = builder.
			Columns("number", "name", "other_names", "place_id").
			Values(building.Number, building.Name, building.OtherNames, building.PlaceID)
	} else {
		builder = builder.
			Columns("name", "other_names", "place_id").
			Values(building.Name, building.OtherNames, building.PlaceID)
	}

	sql, args, err := builder.Suffix("RETURNING number").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert building SQL")
		return 0, fmt.Errorf("failed to build insert building query: %w", err)
	}

	var number int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&number); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrBuildingAlreadyExists
		}
		logger.Error().Err(err).Str("building", building.Name).Msg("Error executing insert building query")
		return 0, fmt.Errorf("%w: error inserting building: %v", apperrors.ErrQueryFailed, err)
	}

	return number, nil
}

// Delete removes a building by number; its rooms go with it via the
// cascading foreign key.
func (r *BuildingRepository) Delete(ctx context.Context, number int64) error {
	sql, args, err := r.sb.Delete("buildings").
		Where(squirrel.Eq{"number": number}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete building SQL")
		return fmt.Errorf("failed to build delete building query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("buildingNumber", number).Msg("Error executing delete building query")
		return fmt.Errorf("%w: error deleting building: %v", apperrors.ErrQueryFailed, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBuildingNotFound
	}

	return nil
}

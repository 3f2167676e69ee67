package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"classfinder/internal/app/models"
	"classfinder/internal/app/repositories"
	"classfinder/internal/db"
)

// Loader populates the database from scraped JSON files. This is the only
// write path in the system; the HTTP API stays read-only.
type Loader struct {
	database *db.PostgresDB
	registry *models.TermRegistry
	validate *validator.Validate
	logger   zerolog.Logger
}

// BuildingRecord is one building entry in a buildings JSON file.
type BuildingRecord struct {
	Name       string   `json:"name" validate:"required"`
	PlaceID    *string  `json:"place_id"`
	OtherNames []string `json:"other_names"`
}

// BuildingFile is the scraped buildings file layout.
type BuildingFile struct {
	Buildings []BuildingRecord `json:"buildings" validate:"required,dive"`
}

// RoomRecord is one room entry in a rooms JSON file, keyed by the room
// name that meeting places refer to.
type RoomRecord struct {
	BuildingNumber int64   `json:"building_number" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Number         *string `json:"number"`
	Floor          *int32  `json:"floor"`
	Capacity       *int32  `json:"capacity"`
}

// RoomFile is the rooms file layout.
type RoomFile struct {
	Rooms []RoomRecord `json:"rooms" validate:"required,dive"`
}

// ClassRecord is one class entry in a term's classes JSON file. Meetings are
// [place, time] pairs; a 3-element entry means two times in the same place.
type ClassRecord struct {
	Number      int64      `json:"number" validate:"required"`
	Code        string     `json:"code" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Mode        string     `json:"mode" validate:"required"`
	Instructors []string   `json:"instructors" validate:"required"`
	Meetings    [][]string `json:"meetings"`
}

// ClassFile is the scraped classes file layout.
type ClassFile struct {
	Classes []ClassRecord `json:"classes" validate:"required,dive"`
}

// New creates a Loader over an open database.
func New(database *db.PostgresDB, registry *models.TermRegistry, lgr zerolog.Logger) *Loader {
	return &Loader{
		database: database,
		registry: registry,
		validate: validator.New(),
		logger:   lgr,
	}
}

// LoadBuildings reads a buildings JSON file and inserts every record in one
// transaction. Building numbers come from the identity sequence.
func (l *Loader) LoadBuildings(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read buildings file: %w", err)
	}

	var file BuildingFile
	if err := json.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse buildings file: %w", err)
	}

	if err := l.validate.Struct(&file); err != nil {
		return fmt.Errorf("buildings file failed validation: %w", err)
	}

	return l.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		buildingRepo := repositories.NewBuildingRepository(tx)

		for _, record := range file.Buildings {
			number, err := buildingRepo.Insert(ctx, &models.Building{
				Name:       record.Name,
				OtherNames: record.OtherNames,
				PlaceID:    record.PlaceID,
			})
			if err != nil {
				return fmt.Errorf("failed to insert building %q: %w", record.Name, err)
			}
			l.logger.Info().Int64("number", number).Str("name", record.Name).Msg("Building added")
		}

		return nil
	})
}

// LoadClasses reads a term's classes JSON file and inserts every class with
// its instructors and meetings in one transaction. The term must be in the
// allow-list and its tables are assumed to exist (see EnsureTermSchema).
func (l *Loader) LoadClasses(ctx context.Context, path string, term models.Term) error {
	if _, err := l.registry.Tables(term); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read classes file: %w", err)
	}

	var file ClassFile
	if err := json.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse classes file: %w", err)
	}

	if err := l.validate.Struct(&file); err != nil {
		return fmt.Errorf("classes file failed validation: %w", err)
	}

	return l.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		classRepo := repositories.NewClassRepository(tx, l.registry)

		for _, record := range file.Classes {
			class := &models.Class{
				Number: record.Number,
				Code:   record.Code,
				Name:   record.Name,
				Mode:   models.ClassMode(record.Mode),
			}
			if err := classRepo.InsertClass(ctx, term, class); err != nil {
				return fmt.Errorf("failed to insert class %q: %w", record.Code, err)
			}

			for _, instructor := range record.Instructors {
				if err := classRepo.InsertInstructor(ctx, term, record.Number, instructor); err != nil {
					return fmt.Errorf("failed to insert instructor for class %q: %w", record.Code, err)
				}
			}

			for _, meeting := range expandMeetings(record.Meetings) {
				if err := classRepo.InsertMeeting(ctx, term, record.Number, meeting); err != nil {
					return fmt.Errorf("failed to insert meeting for class %q: %w", record.Code, err)
				}
			}

			l.logger.Info().Str("code", record.Code).Str("name", record.Name).Msg("Class added")
		}

		return nil
	})
}

// LoadRooms resolves a term's meeting places into room rows using a rooms
// JSON file keyed by room name. Places already present in the rooms table
// are skipped; places with no entry in the file are logged and left
// unresolved, since meeting_place is a convention the schema does not
// enforce.
func (l *Loader) LoadRooms(ctx context.Context, path string, term models.Term) error {
	if _, err := l.registry.Tables(term); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rooms file: %w", err)
	}

	var file RoomFile
	if err := json.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse rooms file: %w", err)
	}

	if err := l.validate.Struct(&file); err != nil {
		return fmt.Errorf("rooms file failed validation: %w", err)
	}

	index := indexRooms(file.Rooms)

	return l.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		roomRepo := repositories.NewRoomRepository(tx)
		classRepo := repositories.NewClassRepository(tx, l.registry)

		places, err := classRepo.MeetingPlaces(ctx, term)
		if err != nil {
			return fmt.Errorf("failed to list meeting places: %w", err)
		}

		for _, place := range places {
			exists, err := roomRepo.ExistsByName(ctx, place)
			if err != nil {
				return fmt.Errorf("failed to check room %q: %w", place, err)
			}
			if exists {
				continue
			}

			record, ok := index[place]
			if !ok {
				l.logger.Warn().Str("place", place).Msg("No room data for meeting place")
				continue
			}

			if err := roomRepo.Insert(ctx, &models.Room{
				BuildingNumber: record.BuildingNumber,
				Name:           record.Name,
				Number:         record.Number,
				Floor:          record.Floor,
				Capacity:       record.Capacity,
			}); err != nil {
				return fmt.Errorf("failed to insert room %q: %w", record.Name, err)
			}
			l.logger.Info().Str("name", record.Name).Int64("building", record.BuildingNumber).Msg("Room added")
		}

		return nil
	})
}

// indexRooms keys room records by name for meeting-place lookup.
func indexRooms(records []RoomRecord) map[string]RoomRecord {
	index := make(map[string]RoomRecord, len(records))
	for _, r := range records {
		index[r.Name] = r
	}
	return index
}

// expandMeetings flattens scraped meeting entries into (place, time) slots.
// An entry of [place, time1, time2] is two slots in the same place; anything
// shorter than two elements is dropped.
func expandMeetings(raw [][]string) []models.Meeting {
	meetings := []models.Meeting{}
	for _, entry := range raw {
		if len(entry) < 2 {
			continue
		}
		for _, t := range entry[1:] {
			meetings = append(meetings, models.Meeting{
				Place: entry[0],
				Time:  t,
			})
		}
	}
	return meetings
}

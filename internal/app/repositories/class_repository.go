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

// ClassRepository handles class database operations. Every method resolves
// its table names through the term registry; a term outside the allow-list
// never reaches SQL construction.
type ClassRepository struct {
	db       Querier
	sb       squirrel.StatementBuilderType
	registry *models.TermRegistry
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db Querier, registry *models.TermRegistry) *ClassRepository {
	return &ClassRepository{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		registry: registry,
	}
}

// GetByTerm retrieves every class of a term with its instructors and
// meetings. Left joins keep classes without either, and an empty term
// yields an empty slice rather than an error.
func (r *ClassRepository) GetByTerm(ctx context.Context, term models.Term) ([]models.ClassDetail, error) {
	tables, err := r.registry.Tables(term)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select(
		"c.number", "c.code", "c.name", "c.mode", "c.last_updated",
		"i.instructor", "m.meeting_place", "m.meeting_time").
		From(tables.Classes + " AS c").
		LeftJoin(tables.Instructors + " AS i ON c.number = i.class_number").
		LeftJoin(tables.Meetings + " AS m ON c.number = m.class_number").
		OrderBy("c.number ASC", "i.instructor ASC", "m.meeting_place ASC", "m.meeting_time ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get classes SQL")
		return nil, fmt.Errorf("failed to build classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			logger.Error().Str("term", string(term)).Msg("Term tables missing for allow-listed term")
		} else {
			logger.Error().Err(err).Str("term", string(term)).Msg("Error executing get classes query")
		}
		return nil, fmt.Errorf("%w: error querying classes: %v", apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	// The join fans out to one row per (class, instructor, meeting)
	// combination; fold the rows back into one record per class.
	details := []models.ClassDetail{}
	index := map[int64]int{}
	seenInstructor := map[string]bool{}
	seenMeeting := map[string]bool{}

	for rows.Next() {
		var class models.Class
		var instructor, meetingPlace, meetingTime *string
		if err := rows.Scan(
			&class.Number, &class.Code, &class.Name, &class.Mode, &class.LastUpdated,
			&instructor, &meetingPlace, &meetingTime,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning class row")
			return nil, fmt.Errorf("%w: error scanning class row: %v", apperrors.ErrQueryFailed, err)
		}

		i, ok := index[class.Number]
		if !ok {
			i = len(details)
			index[class.Number] = i
			details = append(details, models.ClassDetail{
				Class:       class,
				Instructors: []string{},
				Meetings:    []models.Meeting{},
			})
		}

		if instructor != nil {
			key := fmt.Sprintf("%d\x00%s", class.Number, *instructor)
			if !seenInstructor[key] {
				seenInstructor[key] = true
				details[i].Instructors = append(details[i].Instructors, *instructor)
			}
		}

		if meetingPlace != nil && meetingTime != nil {
			key := fmt.Sprintf("%d\x00%s\x00%s", class.Number, *meetingPlace, *meetingTime)
			if !seenMeeting[key] {
				seenMeeting[key] = true
				details[i].Meetings = append(details[i].Meetings, models.Meeting{
					Place: *meetingPlace,
					Time:  *meetingTime,
				})
			}
		}
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating class rows")
		return nil, fmt.Errorf("%w: error iterating class rows: %v", apperrors.ErrQueryFailed, err)
	}

	return details, nil
}

// MeetingPlaces returns the distinct meeting places recorded for a term,
// in lexical order. The loader resolves these into room rows.
func (r *ClassRepository) MeetingPlaces(ctx context.Context, term models.Term) ([]string, error) {
	tables, err := r.registry.Tables(term)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select("meeting_place").
		Distinct().
		From(tables.Meetings).
		OrderBy("meeting_place ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building meeting places SQL")
		return nil, fmt.Errorf("failed to build meeting places query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("term", string(term)).Msg("Error executing meeting places query")
		return nil, fmt.Errorf("%w: error querying meeting places: %v", apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	places := []string{}
	for rows.Next() {
		var place string
		if err := rows.Scan(&place); err != nil {
			logger.Error().Err(err).Msg("Error scanning meeting place row")
			return nil, fmt.Errorf("%w: error scanning meeting place row: %v", apperrors.ErrQueryFailed, err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating meeting place rows")
		return nil, fmt.Errorf("%w: error iterating meeting place rows: %v", apperrors.ErrQueryFailed, err)
	}

	return places, nil
}

// InsertClass creates a class row for a term. The last_updated column is
// set by the table trigger, not by this method.
func (r *ClassRepository) InsertClass(ctx context.Context, term models.Term, class *models.Class) error {
	tables, err := r.registry.Tables(term)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert(tables.Classes).
		Columns("number", "code", "name", "mode").
		Values(class.Number, class.Code, class.Name, class.Mode).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert class SQL")
		return fmt.Errorf("failed to build insert class query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrClassAlreadyExists
		}
		if dberrors.IsCheckViolation(err) {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidClassMode, class.Mode)
		}
		logger.Error().Err(err).Str("code", class.Code).Msg("Error executing insert class query")
		return fmt.Errorf("%w: error inserting class: %v", apperrors.ErrQueryFailed, err)
	}

	return nil
}

// InsertInstructor records one instructor assignment for a class.
func (r *ClassRepository) InsertInstructor(ctx context.Context, term models.Term, classNumber int64, instructor string) error {
	tables, err := r.registry.Tables(term)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert(tables.Instructors).
		Columns("class_number", "instructor").
		Values(classNumber, instructor).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert instructor SQL")
		return fmt.Errorf("failed to build insert instructor query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classNumber", classNumber).Msg("Error executing insert instructor query")
		return fmt.Errorf("%w: error inserting instructor: %v", apperrors.ErrQueryFailed, err)
	}

	return nil
}

// InsertMeeting records one meeting slot for a class.
func (r *ClassRepository) InsertMeeting(ctx context.Context, term models.Term, classNumber int64, meeting models.Meeting) error {
	tables, err := r.registry.Tables(term)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert(tables.Meetings).
		Columns("class_number", "meeting_place", "meeting_time").
		Values(classNumber, meeting.Place, meeting.Time).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert meeting SQL")
		return fmt.Errorf("failed to build insert meeting query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classNumber", classNumber).Msg("Error executing insert meeting query")
		return fmt.Errorf("%w: error inserting meeting: %v", apperrors.ErrQueryFailed, err)
	}

	return nil
}

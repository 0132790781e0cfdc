package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shubh-37/calmmind/internal/models"
)

// Columns is the fixed header of the interaction log.
var Columns = []string{"date", "mood", "stress_level", "text", "journal"}

type InteractionRepository struct {
	db *DB
}

func NewInteractionRepository(db *DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Create appends a record to the log. Records are never updated or deleted.
func (r *InteractionRepository) Create(ctx context.Context, record *models.InteractionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !record.StressLevel.Valid() {
		return fmt.Errorf("invalid stress level %q", record.StressLevel)
	}

	if record.Date == "" {
		record.Date = time.Now().Format(models.DateLayout)
	}
	// The CSV reader folds \r\n inside quoted fields to \n, so store it that way.
	record.Text = normalizeNewlines(record.Text)
	record.Journal = normalizeNewlines(record.Journal)

	row := []string{
		record.Date,
		string(record.Mood),
		string(record.StressLevel),
		record.Text,
		record.Journal,
	}

	if err := r.db.appendRow(Columns, row); err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	return nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

// GetAll returns every record in write order. ErrNoData means the log file
// does not exist; an existing log with no rows returns an empty slice.
func (r *InteractionRepository) GetAll(ctx context.Context) ([]*models.InteractionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := r.db.readRows(Columns)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}

	records := make([]*models.InteractionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &models.InteractionRecord{
			Date:        row[0],
			Mood:        models.Mood(row[1]),
			StressLevel: models.StressLevel(row[2]),
			Text:        row[3],
			Journal:     row[4],
		})
	}

	return records, nil
}

// GetRecent returns up to limit records, most recent first. A non-positive
// limit returns all of them.
func (r *InteractionRepository) GetRecent(ctx context.Context, limit int) ([]*models.InteractionRecord, error) {
	records, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	recent := make([]*models.InteractionRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		recent = append(recent, records[i])
		if limit > 0 && len(recent) == limit {
			break
		}
	}

	return recent, nil
}

// Count returns total number of logged interactions
func (r *InteractionRepository) Count(ctx context.Context) (int, error) {
	records, err := r.GetAll(ctx)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return 0, nil
		}
		return 0, err
	}
	return len(records), nil
}

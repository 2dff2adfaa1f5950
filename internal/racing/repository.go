package racing

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/katana82/f1gn/internal/logging"
)

// Repository reads finishing results through a Bun-backed database.
type Repository struct {
	db     *bun.DB
	logger logging.Logger
}

// NewRepository constructs the read-only results repository. A nil logger
// disables logging.
func NewRepository(db *bun.DB, logger logging.Logger) *Repository {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Repository{db: db, logger: logger}
}

// ResultsForRace returns the classification for one race, ordered by
// finishing position ascending. Ordering is delegated to the query.
func (r *Repository) ResultsForRace(ctx context.Context, raceID int64) ([]Result, error) {
	if r == nil || r.db == nil {
		return nil, ErrDatabaseRequired
	}

	var rows []resultRow
	err := r.db.NewSelect().
		ColumnExpr("rr.position").
		ColumnExpr("rr.points").
		ColumnExpr("rr.team_id").
		ColumnExpr("d.first_name").
		ColumnExpr("d.last_name").
		TableExpr("race_results AS rr").
		Join("JOIN drivers AS d ON d.driver_id = rr.driver_id").
		Where("rr.race_id = ?", raceID).
		OrderExpr("rr.position ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("racing: query results for race %d: %w", raceID, err)
	}

	results := make([]Result, len(rows))
	for i, row := range rows {
		results[i] = row.toResult()
	}
	r.logger.Debug("results.loaded", "race_id", raceID, "rows", len(results))
	return results, nil
}

// Package racing is the read-only path into the pre-existing race results
// schema. It owns no data: the race_results and drivers tables exist and
// are populated outside this system.
package racing

import (
	"database/sql"
	"errors"
	"strings"
)

var ErrDatabaseRequired = errors.New("racing: repository requires a database")

// Result is one finishing classification row shaped for display.
type Result struct {
	Position int
	Driver   string
	Team     string
	Points   float64
}

// resultRow matches the columns produced by the join query.
type resultRow struct {
	Position  int            `bun:"position"`
	Points    float64        `bun:"points"`
	TeamID    string         `bun:"team_id"`
	FirstName sql.NullString `bun:"first_name"`
	LastName  sql.NullString `bun:"last_name"`
}

func (r resultRow) toResult() Result {
	return Result{
		Position: r.Position,
		Driver:   nameSegment(r.FirstName) + " " + nameSegment(r.LastName),
		Team:     r.TeamID,
		Points:   r.Points,
	}
}

// nameSegment strips the underscore-delimited prefixes the upstream import
// left on driver name columns, keeping only the last segment. A NULL column
// renders as the literal word "undefined" — a quirk carried over verbatim
// from the original site.
func nameSegment(field sql.NullString) string {
	if !field.Valid {
		return "undefined"
	}
	parts := strings.Split(field.String, "_")
	return parts[len(parts)-1]
}

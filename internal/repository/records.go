package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/signpost-server/internal/signpost"
)

type Record struct {
	GameSessionId string  `json:"game_session_id"`
	Username      *string `json:"username"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	CornerStart   bool    `json:"corner_start"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username   *string
	GameParams *signpost.GameParams
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.GameParams != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"corner_start = @cornerStart",
		)
		args["width"] = f.GameParams.Width
		args["height"] = f.GameParams.Height
		args["cornerStart"] = f.GameParams.ForceCornerStart
	}
	return strings.Join(clauses, " AND "), args
}

// GetRecords lists best completion times, fastest first. Sessions that
// leaned on the solver do not qualify.
func (q Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		game_session_id::text,
		username,
		width,
		height,
		corner_start,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		completed = true
		AND used_solve = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}

package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/signpost-server/internal/signpost"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Width         int
	Height        int
	CornerStart   bool
	Completed     bool
	UsedSolve     bool
	GameDesc      string
	Solution      string
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

// GameState decodes the stored gob blob.
func (s GameSession) GameState() (*signpost.GameState, error) {
	return signpost.DecodeGameState(s.State)
}

type CreateGameSessionParams struct {
	PlayerId    *int64
	CornerStart bool
	GameDesc    string
	Solution    string
}

func (q Queries) CreateGameSession(
	ctx context.Context, state *signpost.GameState, params CreateGameSessionParams,
) (*GameSession, error) {
	blob, err := state.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"width":        state.Width,
		"height":       state.Height,
		"corner_start": params.CornerStart,
		"completed":    state.Completed,
		"used_solve":   state.UsedSolve,
		"game_desc":    params.GameDesc,
		"solution":     params.Solution,
		"state":        blob,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, width, height, corner_start,
			completed, used_solve, game_desc, solution, state
		)
		VALUES (
			@player_id, @width, @height, @corner_start,
			@completed, @used_solve, @game_desc, @solution, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q Queries) FetchGameSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Completed *bool
	UsedSolve *bool
	EndedAt   *time.Time
	State     *[]byte
}

func (p UpdateGameSessionParams) SetClause() (string, map[string]any) {
	parts := make([]string, 0)
	args := make(map[string]any)

	if p.Completed != nil {
		parts = append(parts, "completed = @completed")
		args["completed"] = *p.Completed
	}
	if p.UsedSolve != nil {
		parts = append(parts, "used_solve = @used_solve")
		args["used_solve"] = *p.UsedSolve
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+" WHERE game_session_id = @game_session_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/signpost-server/internal/signpost"
)

func TestUpdateGameSessionSetClause(t *testing.T) {
	completed := true
	endedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := []byte{1, 2, 3}

	params := UpdateGameSessionParams{
		Completed: &completed,
		EndedAt:   &endedAt,
		State:     &state,
	}
	clause, args := params.SetClause()

	assert.Equal(t, "completed = @completed, ended_at = @ended_at, state = @state", clause)
	assert.Equal(t, true, args["completed"])
	assert.Equal(t, endedAt, args["ended_at"])
	assert.Equal(t, state, args["state"])
	assert.NotContains(t, args, "used_solve")
}

func TestRecordFilterWhereClause(t *testing.T) {
	username := "alice"
	params := signpost.GameParams{Width: 5, Height: 5, ForceCornerStart: true}

	clause, args := RecordFilter{}.WhereClause()
	assert.Empty(t, clause)
	assert.Empty(t, args)

	clause, args = RecordFilter{Username: &username}.WhereClause()
	assert.Equal(t, "username = @username", clause)
	assert.Equal(t, "alice", args["username"])

	clause, args = RecordFilter{Username: &username, GameParams: &params}.WhereClause()
	assert.Equal(
		t,
		"username = @username AND width = @width AND height = @height AND corner_start = @cornerStart",
		clause,
	)
	assert.Equal(t, 5, args["width"])
	assert.Equal(t, true, args["cornerStart"])
}

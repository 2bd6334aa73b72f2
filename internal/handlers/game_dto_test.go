package handlers

import (
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/signpost-server/internal/repository"
	"github.com/vancomm/signpost-server/internal/signpost"
)

func TestParseCreateNewGameDTO(t *testing.T) {
	query, err := url.ParseQuery("width=5&height=4&corner_start=true&extra=ignored")
	require.NoError(t, err)

	dto, err := ParseCreateNewGameDTO(query)
	require.NoError(t, err)
	assert.Equal(t, CreateNewGameDTO{Width: 5, Height: 4, CornerStart: true}, dto)
	assert.Equal(
		t,
		signpost.GameParams{Width: 5, Height: 4, ForceCornerStart: true},
		dto.GameParams(),
	)

	query, err = url.ParseQuery("width=5")
	require.NoError(t, err)
	_, err = ParseCreateNewGameDTO(query)
	assert.Error(t, err, "height is required")
}

func TestNewGameSessionDTO(t *testing.T) {
	params := signpost.GameParams{Width: 2, Height: 2}
	game, err := signpost.NewGameState(params, "1cfc4a")
	require.NoError(t, err)

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := &repository.GameSession{
		GameSessionId: 42,
		Width:         2,
		Height:        2,
		GameDesc:      "1cfc4a",
		StartedAt:     pgtype.Timestamptz{Time: started, Valid: true},
	}

	dto := NewGameSessionDTO(session, game)
	assert.Equal(t, "42", dto.GameSessionId)
	assert.Equal(t, "1cfc4a", dto.GameDesc)
	assert.Equal(t, started.UnixMilli(), dto.StartedAt)
	assert.Nil(t, dto.EndedAt)
	assert.Equal(t, []bool{true, false, false, true}, dto.Immutable)
	assert.Equal(t, []int{1, 0, 0, 4}, dto.Nums)
	assert.False(t, dto.Completed)

	ended := started.Add(90 * time.Second)
	session.EndedAt = pgtype.Timestamptz{Time: ended, Valid: true}
	dto = NewGameSessionDTO(session, game)
	require.NotNil(t, dto.EndedAt)
	assert.Equal(t, ended.UnixMilli(), *dto.EndedAt)
}

package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/signpost-server/internal/repository"
	"github.com/vancomm/signpost-server/internal/signpost"
)

type CreateNewGameDTO struct {
	Width       int  `schema:"width,required"`
	Height      int  `schema:"height,required"`
	CornerStart bool `schema:"corner_start"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CreateNewGameDTO) GameParams() signpost.GameParams {
	return signpost.GameParams{
		Width:            dto.Width,
		Height:           dto.Height,
		ForceCornerStart: dto.CornerStart,
	}
}

// GameSessionDTO is the wire shape of a session. Cell arrays are in
// row-major order; next/prev hold cell indices or -1.
type GameSessionDTO struct {
	GameSessionId string               `json:"game_session_id"`
	Width         int                  `json:"width"`
	Height        int                  `json:"height"`
	CornerStart   bool                 `json:"corner_start"`
	GameDesc      string               `json:"game_desc"`
	Dirs          []signpost.Direction `json:"dirs"`
	Nums          []int                `json:"nums"`
	Immutable     []bool               `json:"immutable"`
	Errors        []bool               `json:"errors"`
	Next          []int                `json:"next"`
	Prev          []int                `json:"prev"`
	Completed     bool                 `json:"completed"`
	UsedSolve     bool                 `json:"used_solve"`
	StartedAt     int64                `json:"started_at"`
	EndedAt       *int64               `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, g *signpost.GameState,
) *GameSessionDTO {
	immutable := make([]bool, g.N)
	errs := make([]bool, g.N)
	for i := range g.N {
		immutable[i] = g.Flags[i]&signpost.FlagImmutable != 0
		errs[i] = g.Flags[i]&signpost.FlagError != 0
	}

	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}

	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Width:         g.Width,
		Height:        g.Height,
		CornerStart:   session.CornerStart,
		GameDesc:      session.GameDesc,
		Dirs:          g.Dirs,
		Nums:          g.Nums,
		Immutable:     immutable,
		Errors:        errs,
		Next:          g.Next,
		Prev:          g.Prev,
		Completed:     g.Completed,
		UsedSolve:     g.UsedSolve,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
		EndedAt:       endedAt,
	}
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/signpost-server/internal/config"
	"github.com/vancomm/signpost-server/internal/middleware"
	"github.com/vancomm/signpost-server/internal/repository"
	"github.com/vancomm/signpost-server/internal/signpost"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	handler := &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}

	return handler
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	gameParams := dto.GameParams()
	if err := gameParams.Validate(true); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	desc, solution, err := gameParams.NewGameDesc(g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}

	game, err := signpost.NewGameState(gameParams, desc)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("generated an undecodable game", "desc", desc, "error", err)
		return
	}

	params := repository.CreateGameSessionParams{
		CornerStart: gameParams.ForceCornerStart,
		GameDesc:    desc,
		Solution:    solution,
	}
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		g.logger.Debug("creating player session", "claims", claims)
		params.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// fetchSession resolves the {id} path value into a stored session and
// its decoded game state, writing the appropriate status on failure.
func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *signpost.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

// persistGame writes an updated game state back into its session row.
func (g GameHandler) persistGame(
	ctx context.Context,
	session *repository.GameSession, game *signpost.GameState,
	usedSolve bool,
) (*repository.GameSession, error) {
	blob, err := game.Bytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize game state: %w", err)
	}

	params := repository.UpdateGameSessionParams{
		Completed: &game.Completed,
		State:     &blob,
	}
	if usedSolve {
		params.UsedSolve = &usedSolve
	}
	if game.Completed && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	return g.repo.UpdateGameSession(ctx, session.GameSessionId, params)
}

func (g GameHandler) saveGame(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *signpost.GameState,
	usedSolve bool,
) (*repository.GameSession, bool) {
	updated, err := g.persistGame(r.Context(), session, game, usedSolve)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return nil, false
	}
	return updated, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	move := r.URL.Query().Get("move")
	if move == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(errors.New("missing move parameter")))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	next, err := game.ExecuteMove(move)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	updated, ok := g.saveGame(w, r, session, next, next.UsedSolve)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(updated, next))
}

func (g GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	move, err := game.Solve()
	if errors.Is(err, signpost.ErrPuzzleImpossible) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if errors.Is(err, signpost.ErrPuzzleUnsolvable) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to solve puzzle", "error", err)
		return
	}

	next, err := game.ExecuteMove(move)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("solver produced an invalid move", "move", move, "error", err)
		return
	}

	updated, ok := g.saveGame(w, r, session, next, true)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(updated, next))
}

// Reveal applies the solution stored at generation time, ending the
// game. Unlike Solve it works even from a state the deduction solver
// cannot progress.
func (g GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	next, err := game.ExecuteMove(session.Solution)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("stored solution does not apply", "error", err)
		return
	}

	updated, ok := g.saveGame(w, r, session, next, true)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(updated, next))
}

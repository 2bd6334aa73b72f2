package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/signpost-server/internal/config"
	"github.com/vancomm/signpost-server/internal/middleware"
	"github.com/vancomm/signpost-server/internal/repository"
	"github.com/vancomm/signpost-server/internal/signpost"
)

type Records struct {
	logger *slog.Logger
	repo   *repository.Queries
}

func NewRecords(logger *slog.Logger, db *pgxpool.Pool) *Records {
	return &Records{
		logger: logger,
		repo:   repository.New(db),
	}
}

// recordFilter builds the query filter: an optional "params" value in
// the "WxH[c]" form narrows the board, own=true narrows to the caller.
func recordFilter(r *http.Request, own bool) (repository.RecordFilter, error) {
	var filter repository.RecordFilter

	if p := r.URL.Query().Get("params"); p != "" {
		gameParams, err := signpost.ParseParams(p)
		if err != nil {
			return filter, err
		}
		filter.GameParams = &gameParams
	}

	if own {
		claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
		if !ok {
			return filter, ErrBadCredentials
		}
		filter.Username = &claims.Username
	}

	return filter, nil
}

func (h Records) GetRecords(w http.ResponseWriter, r *http.Request) {
	h.getRecords(w, r, false)
}

func (h Records) GetOwnRecords(w http.ResponseWriter, r *http.Request) {
	h.getRecords(w, r, true)
}

func (h Records) getRecords(w http.ResponseWriter, r *http.Request, own bool) {
	filter, err := recordFilter(r, own)
	if errors.Is(err, ErrBadCredentials) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	records, err := h.repo.GetRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch records", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, records)
}

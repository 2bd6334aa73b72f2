package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// ConnectWS upgrades the connection and plays the session over it. Each
// text frame carries one or more newline-separated move strings; every
// frame is answered with the full session DTO.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("websocket read", "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		usedSolve := false
		failed := false
		for _, move := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			next, err := game.ExecuteMove(move)
			if err != nil {
				g.logger.Debug("rejected move", "move", move, "error", err)
				failed = true
				break
			}
			game = next
			usedSolve = usedSolve || next.UsedSolve
			if game.Completed {
				break
			}
		}

		if !failed {
			updated, err := g.persistGame(r.Context(), session, game, usedSolve)
			if err != nil {
				g.logger.Error("unable to update session in db", "error", err)
				return
			}
			session = updated
		}

		if err := c.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.logger.Error("websocket write", "error", err)
			return
		}
	}
}

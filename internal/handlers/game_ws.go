package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/mkrall/lostcities/internal/game"
	"github.com/mkrall/lostcities/internal/middleware"
	"github.com/sirupsen/logrus"
)

// GameWSHandler upgrades the connection to WebSocket for watching a
// hosted game: GET /game/ws/{game_id}. The watcher receives the current
// snapshot on connect and then every turn_played / game_end event until
// it disconnects. Watchers are read-only; moves go through the HTTP
// endpoints.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/game/ws/")
		gameID, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "invalid game id", http.StatusBadRequest)
			return
		}
		hg, ok := gs.GameStore.GetGame(gameID)
		if !ok {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for game %s: %v", gameID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exit")
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		subID, frames := hg.Subscribe()
		defer hg.Unsubscribe(subID)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Watchers send nothing meaningful; the read loop only exists to
		// notice the peer going away.
		go func() {
			defer cancel()
			for {
				if _, _, err := c.Read(ctx); err != nil {
					return
				}
			}
		}()

		// Send the current snapshot before streaming events. The frame is
		// serialized under the game lock, so it cannot race with turns.
		if err := writeFrame(ctx, c, hg.SnapshotFrame()); err != nil {
			middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
				c.Close(websocket.StatusNormalClosure, "")
				return
			case frame, open := <-frames:
				if !open {
					c.Close(websocket.StatusGoingAway, "game removed")
					return
				}
				if err := writeFrame(ctx, c, frame); err != nil {
					middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, err)
					return
				}
				if frame.Type == game.EventGameEnd {
					c.Close(websocket.StatusNormalClosure, "game over")
					return
				}
			}
		}
	}
}

func writeFrame(ctx context.Context, c *websocket.Conn, frame game.EventFrame) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.Write(writeCtx, websocket.MessageText, frame.Data)
}

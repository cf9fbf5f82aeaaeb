package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper/internal/game"
)

type wsConfig struct {
	upgrader websocket.Upgrader
}

func newWSConfig() *wsConfig {
	return &wsConfig{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ConnectWS upgrades the request and plays the session over the
// line-command protocol, echoing the full session state after every
// message.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	c, err := g.ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.WithError(err).Warn("websocket read")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		var cmdErr error
		text := strings.TrimSpace(string(message))
		for _, line := range strings.Split(text, "\n") {
			sess.Do(func(ctrl *game.Controller) {
				cmdErr = executeCommand(ctrl, line)
			})
			if cmdErr != nil {
				break
			}
		}
		if cmdErr != nil {
			g.log.WithError(cmdErr).Error("websocket command")
			if err := c.WriteJSON(wrapError(cmdErr)); err != nil {
				g.log.WithError(err).Error("websocket write")
				return
			}
			continue
		}
		if err := c.WriteJSON(sess); err != nil {
			g.log.WithError(err).Error("websocket write")
			return
		}
	}
}

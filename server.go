package main // import "github.com/tonobo/fingersnake-go"

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tonobo/fingersnake-go/game"
)

var errHalfPoint = errors.New("frame needs both x and y, or neither")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FrameRequest is one fingertip sample. Omitting both coordinates reports a
// frame where no hand was detected.
type FrameRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (f FrameRequest) Head() (*game.Point, error) {
	switch {
	case f.X == nil && f.Y == nil:
		return nil, nil
	case f.X == nil || f.Y == nil:
		return nil, errHalfPoint
	}
	return &game.Point{X: *f.X, Y: *f.Y}, nil
}

type ClientMessage struct {
	Action string `json:"action"`
	FrameRequest
}

type ServerMessage struct {
	Type  string      `json:"type"`
	State *game.State `json:"state,omitempty"`
	Error string      `json:"error,omitempty"`
}

func NewRouter(a *Arena) *gin.Engine {
	r := gin.Default()

	r.POST("/start", func(c *gin.Context) {
		st := a.Restart()
		c.JSON(http.StatusOK, gin.H{
			"id":     a.ID,
			"width":  game.SurfaceWidth,
			"height": game.SurfaceHeight,
			"color":  SnakeColor,
			"state":  st,
		})
	})

	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	r.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.State())
	})

	r.POST("/frame", func(c *gin.Context) {
		var req FrameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		head, err := req.Head()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		st, err := a.Frame(head)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, st)
	})

	r.GET("/food.png", func(c *gin.Context) {
		var buf bytes.Buffer
		if err := a.Sprite().EncodePNG(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})

	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if err := conn.WriteJSON(handleMessage(a, msg)); err != nil {
				return
			}
		}
	})

	return r
}

func handleMessage(a *Arena, msg ClientMessage) ServerMessage {
	var (
		st  game.State
		err error
	)
	switch msg.Action {
	case "frame":
		var head *game.Point
		if head, err = msg.Head(); err == nil {
			st, err = a.Frame(head)
		}
	case "restart":
		st = a.Restart()
	case "state":
		st = a.State()
	default:
		return ServerMessage{Type: "error", Error: "unknown action: " + msg.Action}
	}
	if err != nil {
		return ServerMessage{Type: "error", Error: err.Error()}
	}
	return ServerMessage{Type: "state", State: &st}
}

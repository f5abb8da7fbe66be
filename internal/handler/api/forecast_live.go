package api

import (
	"net/http"
	"time"

	"TrendCast/internal/domain/models"
	"TrendCast/internal/usecase"
	xlogger "TrendCast/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// livePushInterval is how often an idle live connection gets a refreshed
// forecast frame.
const livePushInterval = 10 * time.Second

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard is same-origin; tools like wscat have no Origin header.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type liveFrame struct {
	Type string                   `json:"type"`
	Data *models.ForecastResponse `json:"data,omitempty"`
	Err  string                   `json:"error,omitempty"`
}

// ForecastLive streams forecast payloads over a websocket. The client sends
// ForecastRequest JSON messages to retune parameters; the server replies to
// each and additionally pushes a refreshed frame on a fixed interval.
func (h *ForecastEchoHandler) ForecastLive(c echo.Context) error {
	conn, err := liveUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	params := usecase.RunParams{Window: 3, Horizon: 6, History: 10}
	retune := make(chan usecase.RunParams)
	done := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		defer close(done)
		last := params
		for {
			req := &models.ForecastRequest{}
			if err := conn.ReadJSON(req); err != nil {
				return
			}
			// Absent fields keep their previous values; an explicit
			// horizon of zero is honored.
			p := last
			if req.Window != nil && *req.Window > 0 {
				p.Window = *req.Window
			}
			if req.Horizon != nil && *req.Horizon >= 0 {
				p.Horizon = *req.Horizon
			}
			if req.History != nil && *req.History >= 0 {
				p.History = *req.History
			}
			last = p
			select {
			case retune <- p:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(livePushInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	if err := h.pushFrame(c, conn, params); err != nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		case p := <-retune:
			params = p
			if err := h.pushFrame(c, conn, params); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := h.pushFrame(c, conn, params); err != nil {
				return nil
			}
		}
	}
}

func (h *ForecastEchoHandler) pushFrame(c echo.Context, conn *websocket.Conn, params usecase.RunParams) error {
	res, err := h.runner.Response(c.Request().Context(), params)
	if err != nil {
		h.logger.Error("live forecast error", xlogger.Error(err))
		return conn.WriteJSON(liveFrame{Type: "error", Err: domainAppError(err).Message})
	}
	return conn.WriteJSON(liveFrame{Type: "forecast", Data: res})
}

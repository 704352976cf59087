package router

import (
	"github.com/labstack/echo/v4"

	"corruptx/internal/adapter/api/handler"
)

// SetupWebSocketRouter exposes the live event stream. Auth happens inside
// the handler because the browser dial can't carry headers.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}

package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/smazurov/lightnode/internal/events"
)

// registerSSERoutes registers the native Huma SSE endpoint.
func (s *Server) registerSSERoutes() {
	sse.Register(s.api, huma.Operation{
		OperationID: "events-stream",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Server-Sent Events Stream",
		Description: "Real-time event stream for light changes, backlight mode changes, and device write failures",
		Tags:        []string{"events"},
	}, map[string]any{
		"light-changed":          events.LightChangedEvent{},
		"backlight-mode-changed": events.BacklightModeChangedEvent{},
		"device-write-failed":    events.DeviceWriteFailedEvent{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		// Per-connection channel; slow consumers drop events rather than
		// blocking the render path.
		eventCh := make(chan any, 10)

		unsubscribers := []func(){
			events.SubscribeToChannel[events.LightChangedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.BacklightModeChangedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.DeviceWriteFailedEvent](s.eventBus, eventCh),
		}
		defer func() {
			for _, unsub := range unsubscribers {
				unsub()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventCh:
				if err := send.Data(event); err != nil {
					// Connection failed, clean up and exit
					return
				}
			}
		}
	})
}

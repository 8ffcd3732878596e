package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/lightnode/internal/api/models"
	"github.com/smazurov/lightnode/internal/hal"
)

// SetLightInput is the request for updating a logical light.
type SetLightInput struct {
	LightID string `path:"light_id" example:"battery" doc:"Logical light identifier"`
	Body    models.LightState
}

// registerLightRoutes registers the light control endpoints.
func (s *Server) registerLightRoutes() {
	// List available lights
	huma.Register(s.api, huma.Operation{
		OperationID: "list-lights",
		Method:      http.MethodGet,
		Path:        "/api/lights",
		Summary:     "List Lights",
		Description: "List the logical lights available on this device, in stable order",
		Tags:        []string{"lights"},
	}, func(ctx context.Context, input *struct{}) (*models.LightsResponse, error) {
		lights := s.lightService.Lights()
		ids := make([]string, len(lights))
		for i, light := range lights {
			ids[i] = string(light)
		}
		return &models.LightsResponse{
			Body: models.LightsData{
				Lights: ids,
				Count:  len(ids),
			},
		}, nil
	})

	// State snapshot
	huma.Register(s.api, huma.Operation{
		OperationID: "get-light-state",
		Method:      http.MethodGet,
		Path:        "/api/lights/state",
		Summary:     "Get Light State",
		Description: "Get a consistent snapshot of all stored light requests and the arbitration result",
		Tags:        []string{"lights"},
	}, func(ctx context.Context, input *struct{}) (*models.StateResponse, error) {
		snap := s.lightService.State()
		return &models.StateResponse{
			Body: models.StateData{
				Battery:        wireRequest(snap.Battery),
				Notification:   wireRequest(snap.Notification),
				Attention:      wireRequest(snap.Attention),
				AttentionLevel: snap.AttentionLevel,
				Active:         string(snap.Active),
				BacklightMode:  snap.BacklightMode.String(),
				LowPersistence: snap.LowPersistence,
				ButtonPresent:  snap.ButtonPresent,
			},
		}, nil
	})

	// Update a light
	huma.Register(s.api, huma.Operation{
		OperationID: "set-light-state",
		Method:      http.MethodPut,
		Path:        "/api/lights/{light_id}",
		Summary:     "Set Light State",
		Description: "Apply a new state to a logical light and render it to hardware",
		Tags:        []string{"lights"},
		Errors:      []int{400, 404, 500},
	}, func(ctx context.Context, input *SetLightInput) (*struct{}, error) {
		req, err := halRequest(input.Body)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid light state", err)
		}

		if err := s.lightService.SetLightState(hal.Type(input.LightID), req); err != nil {
			switch {
			case errors.Is(err, hal.ErrUnsupportedLight):
				return nil, huma.Error404NotFound("Unsupported light", err)
			case errors.Is(err, hal.ErrDeviceWrite):
				return nil, huma.Error500InternalServerError("Device write failed", err)
			default:
				return nil, huma.Error500InternalServerError("Failed to set light state", err)
			}
		}

		return &struct{}{}, nil
	})
}

// halRequest converts a wire light state to a HAL request.
func halRequest(state models.LightState) (hal.Request, error) {
	flash, err := hal.ParseFlashMode(state.FlashMode)
	if err != nil {
		return hal.Request{}, err
	}
	brightness, err := hal.ParseBrightnessMode(state.BrightnessMode)
	if err != nil {
		return hal.Request{}, err
	}
	return hal.Request{
		Color:      state.Color,
		Flash:      flash,
		FlashOnMs:  state.FlashOnMs,
		FlashOffMs: state.FlashOffMs,
		Brightness: brightness,
	}, nil
}

// wireRequest converts a HAL request to its wire form.
func wireRequest(req hal.Request) models.LightState {
	return models.LightState{
		Color:          req.Color,
		FlashMode:      req.Flash.String(),
		FlashOnMs:      req.FlashOnMs,
		FlashOffMs:     req.FlashOffMs,
		BrightnessMode: req.Brightness.String(),
	}
}

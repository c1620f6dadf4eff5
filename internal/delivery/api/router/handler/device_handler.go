package handler

import (
	"log/slog"
	"net/http"

	"proptrust/internal/delivery/api/middleware"
	"proptrust/internal/delivery/api/response"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /devices: where the calling owner receives pipeline notifications.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest is the body of POST /devices.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=255"`
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required"`
}

// UpdateFCMTokenRequest is the body of PUT /devices/:id/token.
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
}

func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), ownerID, &usecase.RegisterDeviceInput{
		DeviceID: req.DeviceID,
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

func (h *DeviceHandler) GetOwnerDevices(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	devices, err := h.deviceUC.GetOwnerDevices(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	ownerID, deviceID, err := ownerAndDeviceID(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), ownerID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	ownerID, deviceID, err := ownerAndDeviceID(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), ownerID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func ownerAndDeviceID(c echo.Context) (ownerID, deviceID uuid.UUID, err error) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	deviceID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid device id")
	}

	return ownerID, deviceID, nil
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform is the operating system a push device runs.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// ParsePlatform accepts a platform name in any case.
func ParsePlatform(s string) (Platform, bool) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return p, true
	default:
		return "", false
	}
}

// Device is an app installation that receives pipeline notifications for its owner.
// DeviceID is chosen by the client and is unique per owner; FCMToken is rotated by the
// provider and may move between installations.
type Device struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

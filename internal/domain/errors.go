package domain

import "errors"

var (
	ErrSnapshotNotCaptured = errors.New("original wallpaper not captured")
	ErrAssetUnavailable    = errors.New("fake wallpaper asset unavailable")
	ErrScenarioNotFound    = errors.New("scenario not found")
	ErrUnsupportedPlatform = errors.New("not supported on this platform")
)

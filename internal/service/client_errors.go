package service

import "errors"

// Client-side sentinel errors.
var (
	// ErrNotLoggedIn is returned by owner-scoped client operations when no
	// session has been established yet.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoDraft is returned when an operation needs a working draft and
	// none exists, neither in memory nor in local storage.
	ErrNoDraft = errors.New("no draft in progress")

	// ErrUnsupportedImage is returned when an image cannot be decoded as
	// PNG or JPEG.
	ErrUnsupportedImage = errors.New("unsupported image format")

	// ErrImageTooLarge is returned when an image still exceeds the inline
	// byte ceiling after the full downscale ladder.
	ErrImageTooLarge = errors.New("image exceeds inline size limit")
)

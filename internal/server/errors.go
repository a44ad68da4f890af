package server

import "errors"

var (
	errMissingHTTPAddress = errors.New("no HTTP listen address configured")
)

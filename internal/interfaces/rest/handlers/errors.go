package handlers

import "errors"

var errNoSession = errors.New("session middleware is not installed")

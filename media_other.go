//go:build !linux && !darwin
// +build !linux,!darwin

package main

import (
	"fmt"
	"runtime"
)

type unsupportedController struct{}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(Config) MediaController {
	return unsupportedController{}
}

func (unsupportedController) Connect() (Bus, error) {
	return nil, fmt.Errorf("no media bus support on %s", runtime.GOOS)
}

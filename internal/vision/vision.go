// Package vision defines the boundary to the camera and the hand detector.
// Concrete OpenCV-backed implementations live in the cvcam subpackage.
package vision

import (
	"errors"
	"image"
)

// ErrUnsupportedFrame is returned by a Detector handed a Frame produced by a
// different Camera implementation.
var ErrUnsupportedFrame = errors.New("unsupported frame type")

// HandSample is one fingertip position in camera-frame pixel space.
type HandSample struct {
	X, Y float64
}

// Frame is a single captured camera image.
type Frame interface {
	// Size returns the frame dimensions in pixels.
	Size() (width, height int)
	// Thumbnail returns the frame scaled to cols x rows.
	Thumbnail(cols, rows int) (image.Image, error)
	Close() error
}

// Camera is an opened capture device. Read blocks until a frame arrives.
type Camera interface {
	Read() (Frame, error)
	Close() error
}

// Detector finds fingertips in a frame. Zero samples is a normal result.
type Detector interface {
	Detect(frame Frame) ([]HandSample, error)
	Close() error
}

// Package cvcam implements the vision interfaces on top of OpenCV (gocv).
package cvcam

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/diegok/handpong/internal/vision"
)

var (
	ErrDeviceClosed = errors.New("capture device is not open")
	ErrEmptyFrame   = errors.New("capture device returned an empty frame")
)

// Frame wraps an OpenCV matrix. Close must be called once the tick is done.
type Frame struct {
	mat gocv.Mat
}

func (f *Frame) Size() (int, int) {
	return f.mat.Cols(), f.mat.Rows()
}

// Mat exposes the underlying BGR matrix to detectors in this package.
func (f *Frame) Mat() gocv.Mat {
	return f.mat
}

func (f *Frame) Thumbnail(cols, rows int) (image.Image, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %dx%d", cols, rows)
	}

	small := gocv.NewMat()
	defer small.Close()
	gocv.Resize(f.mat, &small, image.Pt(cols, rows), 0, 0, gocv.InterpolationArea)

	return small.ToImage()
}

func (f *Frame) Close() error {
	return f.mat.Close()
}

// Camera reads frames from a local video device.
type Camera struct {
	device *gocv.VideoCapture
	mirror bool
}

// OpenCamera opens the video device with the given index. With mirror set,
// frames are flipped horizontally so the picture behaves like a mirror.
func OpenCamera(index int, mirror bool) (*Camera, error) {
	device, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("open video device %d: %w", index, err)
	}
	if !device.IsOpened() {
		device.Close()
		return nil, fmt.Errorf("open video device %d: %w", index, ErrDeviceClosed)
	}
	return &Camera{device: device, mirror: mirror}, nil
}

// Read blocks until the device delivers the next frame.
func (c *Camera) Read() (vision.Frame, error) {
	if c.device == nil {
		return nil, ErrDeviceClosed
	}

	mat := gocv.NewMat()
	if ok := c.device.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, ErrEmptyFrame
	}

	if c.mirror {
		gocv.Flip(mat, &mat, 1)
	}
	return &Frame{mat: mat}, nil
}

func (c *Camera) Close() error {
	if c.device == nil {
		return nil
	}
	err := c.device.Close()
	c.device = nil
	return err
}

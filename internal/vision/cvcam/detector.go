package cvcam

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/diegok/handpong/internal/vision"
)

// DetectorConfig holds the tuning of the skin-colour hand detector.
type DetectorConfig struct {
	// MaxHands is the maximum number of hands reported per frame.
	MaxHands int
	// MinArea is the smallest contour area, in pixels, treated as a hand.
	MinArea float64
	// Lower and Upper bound the skin colour in HSV (OpenCV ranges: H 0-180).
	Lower, Upper gocv.Scalar
}

// DefaultDetectorConfig returns thresholds that work for most skin tones
// under indoor lighting.
func DefaultDetectorConfig(maxHands int) DetectorConfig {
	return DetectorConfig{
		MaxHands: maxHands,
		MinArea:  3000,
		Lower:    gocv.NewScalar(0, 48, 80, 0),
		Upper:    gocv.NewScalar(20, 255, 255, 0),
	}
}

// SkinDetector finds hands as large skin-coloured blobs and reports the
// topmost point of each blob as the fingertip.
type SkinDetector struct {
	cfg    DetectorConfig
	kernel gocv.Mat
	hsv    gocv.Mat
	mask   gocv.Mat
}

func NewSkinDetector(cfg DetectorConfig) (*SkinDetector, error) {
	if cfg.MaxHands < 1 {
		return nil, fmt.Errorf("max hands must be at least 1, got %d", cfg.MaxHands)
	}
	return &SkinDetector{
		cfg:    cfg,
		kernel: gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(7, 7)),
		hsv:    gocv.NewMat(),
		mask:   gocv.NewMat(),
	}, nil
}

// Detect returns fingertip samples in frame pixel coordinates.
func (d *SkinDetector) Detect(frame vision.Frame) ([]vision.HandSample, error) {
	f, ok := frame.(*Frame)
	if !ok {
		return nil, vision.ErrUnsupportedFrame
	}
	if f.mat.Empty() {
		return nil, nil
	}

	gocv.CvtColor(f.mat, &d.hsv, gocv.ColorBGRToHSV)
	gocv.InRangeWithScalar(d.hsv, d.cfg.Lower, d.cfg.Upper, &d.mask)
	gocv.MorphologyEx(d.mask, &d.mask, gocv.MorphOpen, d.kernel)
	gocv.MorphologyEx(d.mask, &d.mask, gocv.MorphClose, d.kernel)

	found := gocv.FindContours(d.mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	contours := make([]vision.Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		c := found.At(i)
		contours = append(contours, vision.Contour{
			Points: c.ToPoints(),
			Area:   gocv.ContourArea(c),
		})
	}

	return vision.SelectHands(contours, d.cfg.MinArea, d.cfg.MaxHands), nil
}

func (d *SkinDetector) Close() error {
	d.kernel.Close()
	d.hsv.Close()
	return d.mask.Close()
}

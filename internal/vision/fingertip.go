package vision

import (
	"image"
	"sort"
)

// Contour is an outline found in a binary mask together with its area.
type Contour struct {
	Points []image.Point
	Area   float64
}

// Fingertip returns the topmost point of a contour, the usual fingertip
// estimate for a hand raised toward the camera. Ties keep the leftmost point.
func Fingertip(points []image.Point) (image.Point, bool) {
	if len(points) == 0 {
		return image.Point{}, false
	}

	tip := points[0]
	for _, p := range points[1:] {
		if p.Y < tip.Y || (p.Y == tip.Y && p.X < tip.X) {
			tip = p
		}
	}
	return tip, true
}

// SelectHands keeps the largest contours with at least minArea, at most
// maxHands of them, and returns one fingertip sample per contour ordered by
// decreasing area.
func SelectHands(contours []Contour, minArea float64, maxHands int) []HandSample {
	candidates := make([]Contour, 0, len(contours))
	for _, c := range contours {
		if c.Area >= minArea && len(c.Points) > 0 {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Area > candidates[j].Area
	})
	if maxHands > 0 && len(candidates) > maxHands {
		candidates = candidates[:maxHands]
	}

	samples := make([]HandSample, 0, len(candidates))
	for _, c := range candidates {
		tip, _ := Fingertip(c.Points)
		samples = append(samples, HandSample{X: float64(tip.X), Y: float64(tip.Y)})
	}
	return samples
}

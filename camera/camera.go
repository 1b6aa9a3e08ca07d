// Package camera maps the fixed-size game canvas into the window.
package camera

// Viewport scales a canvas uniformly to fit inside a window area and centers it.
// The canvas keeps its aspect ratio; leftover space is letterboxed.
type Viewport struct {
	// Canvas dimensions (game coordinates)
	CanvasW, CanvasH float32

	// Window area the canvas is fitted into
	AreaX, AreaY float32
	AreaW, AreaH float32

	// Computed placement
	Scale            float32
	OffsetX, OffsetY float32
}

// New creates a viewport fitting canvasW x canvasH into an area at (0,0).
func New(canvasW, canvasH, areaW, areaH float32) *Viewport {
	v := &Viewport{CanvasW: canvasW, CanvasH: canvasH}
	v.Fit(0, 0, areaW, areaH)
	return v
}

// Fit recomputes scale and offset for a new window area.
func (v *Viewport) Fit(x, y, w, h float32) {
	v.AreaX, v.AreaY, v.AreaW, v.AreaH = x, y, w, h

	if v.CanvasW <= 0 || v.CanvasH <= 0 || w <= 0 || h <= 0 {
		v.Scale = 0
		v.OffsetX, v.OffsetY = x, y
		return
	}

	v.Scale = min(w/v.CanvasW, h/v.CanvasH)
	v.OffsetX = x + (w-v.CanvasW*v.Scale)/2
	v.OffsetY = y + (h-v.CanvasH*v.Scale)/2
}

// Resize refits into an area anchored at the same origin.
func (v *Viewport) Resize(w, h float32) {
	if w == v.AreaW && h == v.AreaH {
		return
	}
	v.Fit(v.AreaX, v.AreaY, w, h)
}

// CanvasToScreen converts canvas coordinates to window coordinates.
func (v *Viewport) CanvasToScreen(cx, cy float32) (sx, sy float32) {
	return v.OffsetX + cx*v.Scale, v.OffsetY + cy*v.Scale
}

// ScreenToCanvas converts window coordinates to canvas coordinates.
// ok is false when the point falls in the letterbox.
func (v *Viewport) ScreenToCanvas(sx, sy float32) (cx, cy float32, ok bool) {
	if v.Scale == 0 {
		return 0, 0, false
	}
	cx = (sx - v.OffsetX) / v.Scale
	cy = (sy - v.OffsetY) / v.Scale
	ok = cx >= 0 && cx < v.CanvasW && cy >= 0 && cy < v.CanvasH
	return cx, cy, ok
}

// ScaleLength converts a canvas length to window pixels.
func (v *Viewport) ScaleLength(l float32) float32 {
	return l * v.Scale
}

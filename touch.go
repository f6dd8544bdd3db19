package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// handleTouchEvents resizes the matrix panel with a two finger pinch. A
// single touch is a pointer and is handled by the UI input.
func (a *App) handleTouchEvents() {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	// Initialize touch tracking maps if needed
	if a.lastTouchX == nil {
		a.lastTouchX = make(map[ebiten.TouchID]float64)
		a.lastTouchY = make(map[ebiten.TouchID]float64)
	}

	// Clean up ended touches
	for id := range a.lastTouchX {
		if !containsTouchID(touches, id) {
			delete(a.lastTouchX, id)
			delete(a.lastTouchY, id)
		}
	}

	if len(touches) != 2 {
		return
	}

	id1, id2 := touches[0], touches[1]
	x1, y1 := ebiten.TouchPosition(id1)
	x2, y2 := ebiten.TouchPosition(id2)
	currentDist := distance(float64(x1), float64(y1), float64(x2), float64(y2))

	_, ok1 := a.lastTouchX[id1]
	_, ok2 := a.lastTouchX[id2]
	if ok1 && ok2 {
		prevDist := distance(a.lastTouchX[id1], a.lastTouchY[id1],
			a.lastTouchX[id2], a.lastTouchY[id2])

		b := a.panel.Bounds()
		if currentDist > prevDist*1.1 { // Grow
			a.panel.Resize(b.Width*1.1, b.Height*1.1)
		} else if currentDist < prevDist*0.9 { // Shrink
			a.panel.Resize(b.Width*0.9, b.Height*0.9)
		} else {
			// Keep the reference distance until the pinch passes a step
			return
		}
	}

	a.lastTouchX[id1], a.lastTouchY[id1] = float64(x1), float64(y1)
	a.lastTouchX[id2], a.lastTouchY[id2] = float64(x2), float64(y2)
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}

// Helper function to calculate distance between two points
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

package ui

import "github.com/OpticalFlyer/btnmatrix/btnmatrix"

// maxDamageAreas is the number of separate regions kept before the whole
// screen is redrawn instead.
const maxDamageAreas = 32

// DamageList collects the screen regions that need repainting.
type DamageList struct {
	areas []btnmatrix.Area
	all   bool
}

var _ btnmatrix.Damage = (*DamageList)(nil)

// InvalidateArea marks a region dirty.
func (d *DamageList) InvalidateArea(a btnmatrix.Area) {
	if d.all || a.X2 < a.X1 || a.Y2 < a.Y1 {
		return
	}
	for i, old := range d.areas {
		if contains(old, a) {
			return
		}
		if contains(a, old) {
			d.areas[i] = a
			d.dedupe(i)
			return
		}
	}
	if len(d.areas) == maxDamageAreas {
		d.InvalidateAll()
		return
	}
	d.areas = append(d.areas, a)
}

// dedupe drops the areas that the one at i now covers.
func (d *DamageList) dedupe(i int) {
	cover := d.areas[i]
	keep := d.areas[:0]
	for j, a := range d.areas {
		if j != i && contains(cover, a) {
			continue
		}
		keep = append(keep, a)
	}
	d.areas = keep
}

// InvalidateAll marks the whole screen dirty.
func (d *DamageList) InvalidateAll() {
	d.all = true
	d.areas = d.areas[:0]
}

// Dirty reports whether anything needs repainting.
func (d *DamageList) Dirty() bool {
	return d.all || len(d.areas) > 0
}

// Take returns the pending regions and clears the list. all is true when
// the whole screen must be repainted.
func (d *DamageList) Take() (areas []btnmatrix.Area, all bool) {
	areas = append(areas, d.areas...)
	all = d.all
	d.areas = d.areas[:0]
	d.all = false
	return areas, all
}

func contains(outer, inner btnmatrix.Area) bool {
	return inner.X1 >= outer.X1 && inner.X2 <= outer.X2 &&
		inner.Y1 >= outer.Y1 && inner.Y2 <= outer.Y2
}

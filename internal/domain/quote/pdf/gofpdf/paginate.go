package gofpdf

import "math"

// Placement thresholds for the optional-services block. The block is a
// fixed-height trailer that must never straddle a page boundary: past
// pushDownY it is packed right below the body instead of resting at the page
// foot, and past hardBreakY it cannot fit at all and moves to a fresh page.
const (
	servicesMinY = 238 // resting position near the page foot
	pushDownY    = 230 // body reaches this deep: pack the block below it
	hardBreakY   = 250 // body reaches this deep: break the page
	freshPageY   = 30  // fixed offset on a freshly broken page
	pushDownGap  = 5
	defaultGap   = 10
)

// optionalServicesStart resolves where the optional-services block begins
// for a body that ended at cursor y. The tiers are evaluated top down.
func optionalServicesStart(y float64) (startY float64, breakPage bool) {
	switch {
	case y >= hardBreakY:
		return freshPageY, true
	case y > pushDownY:
		return y + pushDownGap, false
	default:
		return math.Max(y+defaultGap, servicesMinY), false
	}
}

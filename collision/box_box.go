package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoxBox tests two oriented boxes with the separating-axis test over the
// four face axes, then clips the incident edge against the reference face
// (the Box2D-Lite formulation). Returns the a→b normal and 1-2 contact
// points. Points separated by less than the speculative distance are kept
// with a negative penetration.
func BoxBox(centerA mgl64.Vec2, angleA float64, halfA mgl64.Vec2, centerB mgl64.Vec2, angleB float64, halfB mgl64.Vec2, speculative float64) (mgl64.Vec2, []ContactPoint, bool) {
	rotA := mgl64.Rotate2D(angleA)
	rotB := mgl64.Rotate2D(angleB)
	rotAT := rotA.Transpose()
	rotBT := rotB.Transpose()

	dp := centerB.Sub(centerA)
	dpA := rotAT.Mul2x1(dp)
	dpB := rotBT.Mul2x1(dp)

	// Rotation of B in A's frame, and its element-wise absolute value for
	// projecting half-extents onto the face axes
	c := rotAT.Mul2(rotB)
	absC := mgl64.Mat2FromRows(
		mgl64.Vec2{math.Abs(c.At(0, 0)), math.Abs(c.At(0, 1))},
		mgl64.Vec2{math.Abs(c.At(1, 0)), math.Abs(c.At(1, 1))},
	)
	absCT := absC.Transpose()

	// Separation along each face axis; any gap beyond the speculative
	// distance rules out contact
	faceAX := math.Abs(dpA.X()) - (halfA.X() + absC.At(0, 0)*halfB.X() + absC.At(0, 1)*halfB.Y())
	if faceAX > speculative {
		return mgl64.Vec2{}, nil, false
	}

	faceAY := math.Abs(dpA.Y()) - (halfA.Y() + absC.At(1, 0)*halfB.X() + absC.At(1, 1)*halfB.Y())
	if faceAY > speculative {
		return mgl64.Vec2{}, nil, false
	}

	faceBX := math.Abs(dpB.X()) - (halfB.X() + absCT.At(0, 0)*halfA.X() + absCT.At(0, 1)*halfA.Y())
	if faceBX > speculative {
		return mgl64.Vec2{}, nil, false
	}

	faceBY := math.Abs(dpB.Y()) - (halfB.Y() + absCT.At(1, 0)*halfA.X() + absCT.At(1, 1)*halfA.Y())
	if faceBY > speculative {
		return mgl64.Vec2{}, nil, false
	}

	// Axis of maximum separation; earlier axes win ties
	bestAxis := 0
	bestSep := math.Inf(-1)
	for i, sep := range [4]float64{faceAX, faceAY, faceBX, faceBY} {
		if sep > bestSep {
			bestAxis = i
			bestSep = sep
		}
	}

	// The best axis fixes the reference box and its outward face normal
	var refNormal mgl64.Vec2
	var refCenter, refHalf, incCenter, incHalf mgl64.Vec2
	var refRot, incRot mgl64.Mat2
	refIsA := bestAxis < 2

	if refIsA {
		switch {
		case bestAxis == 0 && dpA.X() > 0:
			refNormal = rotA.Col(0)
		case bestAxis == 0:
			refNormal = rotA.Col(0).Mul(-1)
		case dpA.Y() > 0:
			refNormal = rotA.Col(1)
		default:
			refNormal = rotA.Col(1).Mul(-1)
		}
		refCenter, refRot, refHalf = centerA, rotA, halfA
		incCenter, incRot, incHalf = centerB, rotB, halfB
	} else {
		switch {
		case bestAxis == 2 && dpB.X() > 0:
			refNormal = rotB.Col(0).Mul(-1)
		case bestAxis == 2:
			refNormal = rotB.Col(0)
		case dpB.Y() > 0:
			refNormal = rotB.Col(1).Mul(-1)
		default:
			refNormal = rotB.Col(1)
		}
		refCenter, refRot, refHalf = centerB, rotB, halfB
		incCenter, incRot, incHalf = centerA, rotA, halfA
	}

	incidentEdge := computeIncidentEdge(incCenter, incRot, incHalf, refNormal)

	// Clip in the reference frame
	refRotT := refRot.Transpose()
	incidentLocal := []mgl64.Vec2{
		refRotT.Mul2x1(incidentEdge[0].Sub(refCenter)),
		refRotT.Mul2x1(incidentEdge[1].Sub(refCenter)),
	}
	refNormalLocal := refRotT.Mul2x1(refNormal)

	// Side planes perpendicular to the reference face, and the face offset
	var sideN mgl64.Vec2
	var sideOff, frontOff float64
	if math.Abs(refNormalLocal.X()) > math.Abs(refNormalLocal.Y()) {
		sideN = mgl64.Vec2{0, 1}
		sideOff = refHalf.Y()
		frontOff = refHalf.X()
	} else {
		sideN = mgl64.Vec2{1, 0}
		sideOff = refHalf.X()
		frontOff = refHalf.Y()
	}

	clip1 := clipSegmentToLine(incidentLocal, sideN, sideOff)
	if len(clip1) < 2 {
		return mgl64.Vec2{}, nil, false
	}

	clip2 := clipSegmentToLine(clip1, sideN.Mul(-1), sideOff)
	if len(clip2) < 2 {
		return mgl64.Vec2{}, nil, false
	}

	contacts := make([]ContactPoint, 0, 2)
	for _, vLocal := range clip2 {
		sep := refNormalLocal.Dot(vLocal) - frontOff
		// sep > 0 => separated (speculative), sep < 0 => overlapping
		if sep <= speculative {
			contacts = append(contacts, ContactPoint{
				Point:       refRot.Mul2x1(vLocal).Add(refCenter),
				Penetration: -sep,
			})
		}
	}

	if len(contacts) == 0 {
		return mgl64.Vec2{}, nil, false
	}

	finalNormal := refNormal
	if !refIsA {
		finalNormal = refNormal.Mul(-1)
	}

	return finalNormal, contacts, true
}

// computeIncidentEdge returns the world-space edge of the incident box
// most anti-parallel to the reference normal
func computeIncidentEdge(center mgl64.Vec2, rot mgl64.Mat2, half mgl64.Vec2, refNormal mgl64.Vec2) [2]mgl64.Vec2 {
	localN := rot.Transpose().Mul2x1(refNormal)

	var v1, v2 mgl64.Vec2
	if math.Abs(localN.X()) > math.Abs(localN.Y()) {
		if localN.X() > 0 {
			v1 = mgl64.Vec2{-half.X(), half.Y()}
			v2 = mgl64.Vec2{-half.X(), -half.Y()}
		} else {
			v1 = mgl64.Vec2{half.X(), -half.Y()}
			v2 = mgl64.Vec2{half.X(), half.Y()}
		}
	} else {
		if localN.Y() > 0 {
			v1 = mgl64.Vec2{half.X(), -half.Y()}
			v2 = mgl64.Vec2{-half.X(), -half.Y()}
		} else {
			v1 = mgl64.Vec2{-half.X(), half.Y()}
			v2 = mgl64.Vec2{half.X(), half.Y()}
		}
	}

	return [2]mgl64.Vec2{
		rot.Mul2x1(v1).Add(center),
		rot.Mul2x1(v2).Add(center),
	}
}

// clipSegmentToLine keeps the part of the segment with signed distance
// normal·p - offset <= 0, inserting the crossing point when one endpoint
// is clipped away
func clipSegmentToLine(in []mgl64.Vec2, normal mgl64.Vec2, offset float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, 0, 2)
	if len(in) < 2 {
		return out
	}

	d0 := normal.Dot(in[0]) - offset
	d1 := normal.Dot(in[1]) - offset

	switch {
	case d0 <= 0 && d1 <= 0:
		out = append(out, in[0], in[1])
	case d0 > 0 && d1 > 0:
		// both outside
	default:
		t := d0 / (d0 - d1)
		intersect := in[0].Add(in[1].Sub(in[0]).Mul(t))
		if d0 <= 0 {
			out = append(out, in[0], intersect)
		} else {
			out = append(out, intersect, in[1])
		}
	}

	return out
}

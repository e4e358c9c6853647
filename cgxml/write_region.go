package cgxml

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
)

func (k *walk) curveVector(cv *geometry.CurveVector, depth int) error {
	if depth > k.maxDepth {
		return errs.ErrMaxDepthExceeded
	}

	switch cv.Boundary {
	case geometry.BoundaryOpen:
		return k.chain(cv, depth)
	case geometry.BoundaryOuter, geometry.BoundaryInner:
		return k.loop(cv, depth)
	case geometry.BoundaryParityRegion:
		loops, err := loopsOf(cv)
		if err != nil {
			return err
		}
		if k.compactCurveVector && len(loops) > 0 {
			return k.surfacePatch(loops, depth)
		}

		return k.set("ParityRegion", depth, func() error {
			return k.array("ListOfLoop", "Loop", func() error {
				return k.each(loops, depth+1)
			})
		})
	case geometry.BoundaryUnionRegion:
		regions, err := subVectors(cv)
		if err != nil {
			return err
		}

		return k.set("SurfaceGroup", depth, func() error {
			return k.array("ListOfSurface", "Surface", func() error {
				return k.each(regions, depth+1)
			})
		})
	case geometry.BoundaryNone:
		return k.set("DgnCurveVector", depth, func() error {
			if err := k.integer("boundaryType", int(cv.Boundary)); err != nil {
				return err
			}

			return k.members(cv, depth)
		})
	default:
		return fmt.Errorf("%w: boundary type %d", errs.ErrUnsupportedGeometry, cv.Boundary)
	}
}

// chain writes the fully named CurveChain form.
func (k *walk) chain(cv *geometry.CurveVector, depth int) error {
	return k.set("CurveChain", depth, func() error {
		return k.members(cv, depth)
	})
}

func (k *walk) members(cv *geometry.CurveVector, depth int) error {
	return k.array("ListOfCurve", "Curve", func() error {
		for _, c := range cv.Children {
			if err := k.geometry(c, depth+1); err != nil {
				return err
			}
		}

		return nil
	})
}

// loop writes a closed loop, using a disk or polygon for a single full
// ellipse or line string when compact primitives are preferred.
func (k *walk) loop(cv *geometry.CurveVector, depth int) error {
	if !k.preferCompact {
		return k.chain(cv, depth)
	}
	only, ok := cv.Singleton()
	if !ok {
		return k.chain(cv, depth)
	}

	switch c := only.(type) {
	case *geometry.EllipticArc:
		if c == nil || !c.IsFullEllipse() {
			break
		}
		f := newArcFrame(c)
		if c.IsCircular() {
			return k.set("CircularDisk", depth, func() error {
				return first(
					k.placement(f.center, f.vectorZ, f.vectorX),
					k.double("radius", f.radiusA),
				)
			})
		}

		return k.set("EllipticDisk", depth, func() error {
			return first(
				k.placement(f.center, f.vectorZ, f.vectorX),
				k.double("radiusA", f.radiusA),
				k.double("radiusB", f.radiusB),
			)
		})
	case *geometry.LineString:
		if c == nil {
			break
		}

		return k.set("Polygon", depth, func() error {
			return k.points("ListOfPoint", "xyz", c.Points)
		})
	}

	return k.chain(cv, depth)
}

// surfacePatch writes the first loop as the exterior and the rest as holes.
func (k *walk) surfacePatch(loops []*geometry.CurveVector, depth int) error {
	return k.set("SurfacePatch", depth, func() error {
		err := k.child("ExteriorLoop", func() error {
			return k.loop(loops[0], depth+1)
		})
		if err != nil {
			return err
		}

		return k.array("ListOfHoleLoop", "HoleLoop", func() error {
			return k.each(loops[1:], depth+1)
		})
	})
}

func (k *walk) each(vectors []*geometry.CurveVector, depth int) error {
	for _, cv := range vectors {
		if err := k.curveVector(cv, depth); err != nil {
			return err
		}
	}

	return nil
}

// loops returns the children of a parity region, which must all be loops.
func loopsOf(cv *geometry.CurveVector) ([]*geometry.CurveVector, error) {
	loops, err := subVectors(cv)
	if err != nil {
		return nil, err
	}
	for i, l := range loops {
		if !l.IsClosedPath() {
			return nil, fmt.Errorf("%w: parity region member %d is %s", errs.ErrUnsupportedGeometry, i, l.Boundary)
		}
	}

	return loops, nil
}

func subVectors(cv *geometry.CurveVector) ([]*geometry.CurveVector, error) {
	out := make([]*geometry.CurveVector, 0, len(cv.Children))
	for i, c := range cv.Children {
		child, ok := c.(*geometry.CurveVector)
		if !ok || child == nil {
			return nil, fmt.Errorf("%w: %s member %d is %T", errs.ErrUnsupportedGeometry, cv.Boundary, i, c)
		}
		out = append(out, child)
	}

	return out, nil
}

package cgxml

import "github.com/arloliu/geomcodec/geometry"

func (k *walk) double(name string, v float64) error {
	return k.sw.Double(name, v, false)
}

func (k *walk) angle(name string, radians float64) error {
	return k.sw.Double(name, degrees(radians), false)
}

func (k *walk) integer(name string, v int) error {
	return k.sw.Int(name, int64(v), false)
}

func (k *walk) boolean(name string, v bool) error {
	return k.sw.Bool(name, v, false)
}

func (k *walk) xyz(name string, x, y, z float64, nameOptional bool) error {
	if k.textualizeXYData {
		return k.sw.Text(name, joinDoubles([]float64{x, y, z}), nameOptional)
	}

	return k.sw.BlockedDoubles(name, nameOptional, []float64{x, y, z})
}

func (k *walk) xy(name string, x, y float64, nameOptional bool) error {
	x, y = suppressNearZero(x, y)
	if k.textualizeXYData {
		return k.sw.Text(name, joinDoubles([]float64{x, y}), nameOptional)
	}

	return k.sw.BlockedDoubles(name, nameOptional, []float64{x, y})
}

func (k *walk) point(name string, p geometry.Point3d) error {
	return k.xyz(name, p.X, p.Y, p.Z, false)
}

func (k *walk) vector(name string, v geometry.Vector3d) error {
	return k.xyz(name, v.X, v.Y, v.Z, false)
}

func (k *walk) points(name, itemName string, pts []geometry.Point3d) error {
	return k.array(name, itemName, func() error {
		for _, p := range pts {
			if err := k.xyz(itemName, p.X, p.Y, p.Z, true); err != nil {
				return err
			}
		}

		return nil
	})
}

func (k *walk) vectors(name, itemName string, vecs []geometry.Vector3d) error {
	return k.array(name, itemName, func() error {
		for _, v := range vecs {
			if err := k.xyz(itemName, v.X, v.Y, v.Z, true); err != nil {
				return err
			}
		}

		return nil
	})
}

func (k *walk) points2(name, itemName string, pts []geometry.Point2d) error {
	return k.array(name, itemName, func() error {
		for _, p := range pts {
			if err := k.xy(itemName, p.X, p.Y, true); err != nil {
				return err
			}
		}

		return nil
	})
}

func (k *walk) doubles(name, itemName string, vals []float64) error {
	return k.array(name, itemName, func() error {
		for _, v := range vals {
			if err := k.sw.Double(itemName, v, true); err != nil {
				return err
			}
		}

		return nil
	})
}

func (k *walk) ints(name, itemName string, vals []int32) error {
	return k.array(name, itemName, func() error {
		for _, v := range vals {
			if err := k.sw.Int(itemName, int64(v), true); err != nil {
				return err
			}
		}

		return nil
	})
}

// placement emits an origin with its z and x directions.
func (k *walk) placement(origin geometry.Point3d, vectorZ, vectorX geometry.Vector3d) error {
	return k.child("placement", func() error {
		return first(
			k.point("origin", origin),
			k.vector("vectorZ", vectorZ),
			k.vector("vectorX", vectorX),
		)
	})
}

func (k *walk) framePlacement(f geometry.Frame) error {
	return k.placement(f.Origin, f.VectorZ, f.VectorX)
}

// first returns the first non-nil error. Arguments are evaluated in order;
// the walk's sink is sticky, so writes after a failure never reach it.
func first(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

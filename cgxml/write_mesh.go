package cgxml

import "github.com/arloliu/geomcodec/geometry"

func (k *walk) surface(s *geometry.BsplineSurface, depth int) error {
	return k.set("BsplineSurface", depth, func() error {
		if err := first(
			k.integer("orderU", s.OrderU),
			k.integer("orderV", s.OrderV),
			k.integer("numUControlPoint", s.NumPolesU),
			k.integer("numVControlPoint", s.NumPolesV),
			k.points("ListOfControlPoint", "xyz", s.Poles),
		); err != nil {
			return err
		}
		if len(s.Weights) > 0 {
			if err := k.doubles("ListOfWeight", "weight", s.Weights); err != nil {
				return err
			}
		}
		if err := first(
			k.doubles("ListOfKnotU", "knotU", s.KnotsU),
			k.doubles("ListOfKnotV", "knotV", s.KnotsV),
			k.boolean("closedU", s.ClosedU),
			k.boolean("closedV", s.ClosedV),
			k.integer("numRulesU", s.NumRulesU),
			k.integer("numRulesV", s.NumRulesV),
			k.boolean("holeOrigin", s.HoleOrigin),
		); err != nil {
			return err
		}
		if s.Boundary == nil {
			return nil
		}

		return k.child("boundary", func() error {
			return k.curveVector(s.Boundary, depth+1)
		})
	})
}

// polyface writes an IndexedMesh. Empty arrays are omitted.
func (k *walk) polyface(p *geometry.Polyface, depth int) error {
	return k.set("IndexedMesh", depth, func() error {
		if err := first(
			k.integer("meshStyle", p.MeshStyle),
			k.integer("numPerFace", p.NumPerFace),
			k.integer("numPerRow", p.NumPerRow),
			k.boolean("twoSided", p.TwoSided),
			k.integer("expectedClosure", p.ExpectedClosure),
		); err != nil {
			return err
		}

		var err error
		write := func(n int, fn func() error) {
			if err == nil && n > 0 {
				err = fn()
			}
		}
		write(len(p.Points), func() error { return k.points("ListOfCoord", "xyz", p.Points) })
		write(len(p.PointIndex), func() error { return k.ints("ListOfCoordIndex", "id", p.PointIndex) })
		write(len(p.Params), func() error { return k.points2("ListOfParam", "uv", p.Params) })
		write(len(p.ParamIndex), func() error { return k.ints("ListOfParamIndex", "id", p.ParamIndex) })
		write(len(p.Normals), func() error { return k.vectors("ListOfNormal", "normal", p.Normals) })
		write(len(p.NormalIndex), func() error { return k.ints("ListOfNormalIndex", "id", p.NormalIndex) })
		write(len(p.IntColors), func() error { return k.ints("ListOfColor", "color", p.IntColors) })
		write(len(p.ColorIndex), func() error { return k.ints("ListOfColorIndex", "id", p.ColorIndex) })
		write(len(p.FaceIndex), func() error { return k.ints("ListOfFaceIndex", "id", p.FaceIndex) })
		write(len(p.FaceData), func() error { return k.faceData(p.FaceData) })
		if err != nil || p.AuxData == nil {
			return err
		}

		return k.auxData(p.AuxData)
	})
}

func (k *walk) faceData(data []geometry.FaceData) error {
	return k.array("ListOfFaceData", "faceData", func() error {
		for _, d := range data {
			vals := []float64{
				d.ParamDistanceLow.X, d.ParamDistanceLow.Y,
				d.ParamDistanceHigh.X, d.ParamDistanceHigh.Y,
				d.ParamLow.X, d.ParamLow.Y,
				d.ParamHigh.X, d.ParamHigh.Y,
			}
			if err := k.sw.BlockedDoubles("faceData", true, vals); err != nil {
				return err
			}
		}

		return nil
	})
}

func (k *walk) auxData(aux *geometry.PolyfaceAuxData) error {
	return k.child("PolyfaceAuxData", func() error {
		if err := k.ints("ListOfAuxIndex", "id", aux.Indices); err != nil {
			return err
		}

		return k.array("ListOfAuxChannel", "AuxChannel", func() error {
			for _, ch := range aux.Channels {
				if err := k.auxChannel(ch); err != nil {
					return err
				}
			}

			return nil
		})
	})
}

func (k *walk) auxChannel(ch geometry.AuxChannel) error {
	return k.child("AuxChannel", func() error {
		if err := first(
			k.integer("dataType", ch.DataType),
			k.sw.Text("name", ch.Name, false),
			k.sw.Text("inputName", ch.InputName, false),
		); err != nil {
			return err
		}

		return k.array("ListOfAuxChannelData", "AuxChannelData", func() error {
			for _, d := range ch.Data {
				err := k.child("AuxChannelData", func() error {
					return first(
						k.double("input", d.Input),
						k.doubles("ListOfValue", "value", d.Values),
					)
				})
				if err != nil {
					return err
				}
			}

			return nil
		})
	})
}

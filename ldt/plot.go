package ldt

import (
	"slices"

	"phfile/document"
	"phfile/schema"
)

// PlotData is the read-only view handed to a polar chart renderer.
type PlotData struct {
	Intensities   []float64
	NumberMc      int
	NumberNg      int
	DistanceDc    int
	DistanceDg    float64
	Symmetry      Symmetry
	LuminaireName string
}

// Curve is one closed polar line: a C-plane and its opposite plane, with
// angles in degrees.
type Curve struct {
	Label  string
	Theta  []float64
	Values []float64
}

// PlotData validates the document and returns a copy of the fields a
// renderer needs.
func (f *File) PlotData() (PlotData, error) {
	if err := f.doc.Validate(f.doc.Values(), document.Full); err != nil {
		return PlotData{}, err
	}

	d := f.doc
	p := PlotData{}
	p.Intensities, _ = d.Floats(schema.LDTLuminousIntensities)
	p.NumberMc, _ = d.Int(schema.LDTNumberMc)
	p.NumberNg, _ = d.Int(schema.LDTNumberNg)
	p.DistanceDc, _ = d.Int(schema.LDTDistanceDc)
	p.DistanceDg, _ = d.Float(schema.LDTDistanceDg)
	p.LuminaireName, _ = d.String(schema.LDTLuminaireName)

	sym, _ := d.Int(schema.LDTSymmetryIndicator)
	p.Symmetry = Symmetry(sym)

	return p, nil
}

// Plane returns the intensities of the first C-plane among angles that has
// data in the stored table. A zero Dc selects the first stored plane.
func (p PlotData) Plane(angles ...int) []float64 {
	for _, c := range angles {
		start, end := 0, p.NumberNg
		if p.DistanceDc != 0 {
			k := c / p.DistanceDc
			start, end = k*p.NumberNg, (k+1)*p.NumberNg
		}

		start = min(max(start, 0), len(p.Intensities))
		end = min(max(end, start), len(p.Intensities))

		if end > start {
			return slices.Clone(p.Intensities[start:end])
		}
	}

	return nil
}

// Curves returns the C0-C180 curve, plus the C90-C270 curve unless the
// table holds a single rotationally symmetric plane. Each curve runs down one plane and back up the
// opposite one, falling back to the first plane when the opposite one is
// not stored.
func (p PlotData) Curves() []Curve {
	theta := make([]float64, 2*p.NumberNg)
	for i := range theta {
		theta[i] = float64(i) * p.DistanceDg
	}

	planes := [][2]int{{0, 180}}
	labels := []string{"C0-C180"}

	if p.Symmetry != SymmetryVertical {
		planes = append(planes, [2]int{90, 270})
		labels = append(labels, "C90-C270")
	}

	curves := make([]Curve, 0, len(planes))

	for i, pl := range planes {
		values := p.Plane(pl[0])
		back := p.Plane(pl[1], pl[0])
		slices.Reverse(back)

		curves = append(curves, Curve{
			Label:  labels[i],
			Theta:  slices.Clone(theta),
			Values: append(values, back...),
		})
	}

	return curves
}

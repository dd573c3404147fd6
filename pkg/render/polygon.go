package render

// ComputePolygonRows decomposes a projected polygon into per-row left and
// right boundary samples, one entry per row from the smallest to the largest
// vertex y. Rows no edge reaches keep sentinel boundaries; see
// Pixel.Touched.
//
// Boundaries are updated with strict comparisons, so when two edge samples
// share the extreme x of a row the one from the earlier edge wins. Adjacent
// triangles rely on this for gapless seams.
func ComputePolygonRows(vertices []Pixel) (left, right []Pixel) {
	var b rowBuilder
	return b.build(vertices)
}

// rowBuilder keeps the slices used by ComputePolygonRows so a renderer can
// reuse them across polygons.
type rowBuilder struct {
	left, right, edge []Pixel
}

func (b *rowBuilder) build(vertices []Pixel) (left, right []Pixel) {
	if len(vertices) == 0 {
		return nil, nil
	}

	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices[1:] {
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	rows := maxY - minY + 1

	b.left = grow(b.left, rows)
	b.right = grow(b.right, rows)
	for i := range rows {
		b.left[i] = Pixel{X: sentinelLeft, Y: minY + i}
		b.right[i] = Pixel{X: sentinelRight, Y: minY + i}
	}

	for i, v := range vertices {
		w := vertices[(i+1)%len(vertices)]
		b.edge = grow(b.edge, abs(v.Y-w.Y)+1)
		Interpolate(v, w, b.edge)

		for _, p := range b.edge {
			row := p.Y - minY
			if p.X < b.left[row].X {
				b.left[row] = p
			}
			if p.X > b.right[row].X {
				b.right[row] = p
			}
		}
	}

	return b.left, b.right
}

// grow returns s resliced to length n, reallocating only if needed.
func grow(s []Pixel, n int) []Pixel {
	if cap(s) < n {
		return make([]Pixel, n)
	}
	return s[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

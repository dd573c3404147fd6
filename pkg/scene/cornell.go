package scene

import "github.com/taigrr/scanline/pkg/math3d"

// Colours of the Cornell box walls and blocks.
var (
	Red    = math3d.V3(0.75, 0.15, 0.15)
	Yellow = math3d.V3(0.75, 0.75, 0.15)
	Green  = math3d.V3(0.15, 0.75, 0.15)
	Cyan   = math3d.V3(0.15, 0.75, 0.75)
	Blue   = math3d.V3(0.15, 0.15, 0.75)
	Purple = math3d.V3(0.75, 0.15, 0.75)
	White  = math3d.V3(0.75, 0.75, 0.75)
)

// cornellSize is the edge length of the room in its authoring units.
const cornellSize = 555.0

// CornellBox returns the classic Cornell box test scene: an open room with a
// short red block and a tall blue block, 30 triangles in total. Coordinates
// are scaled into [-1,1]^3 with x and y flipped so that y points down, the
// camera convention of the renderer.
func CornellBox() Triangles {
	const L = cornellSize

	tris := make(Triangles, 0, 30)

	// Room corners.
	A := math3d.V3(L, 0, 0)
	B := math3d.V3(0, 0, 0)
	C := math3d.V3(L, 0, L)
	D := math3d.V3(0, 0, L)
	E := math3d.V3(L, L, 0)
	F := math3d.V3(0, L, 0)
	G := math3d.V3(L, L, L)
	H := math3d.V3(0, L, L)

	// Floor
	tris = append(tris, NewTriangle(C, B, A, Green), NewTriangle(C, D, B, Green))
	// Left wall
	tris = append(tris, NewTriangle(A, E, C, Purple), NewTriangle(C, E, G, Purple))
	// Right wall
	tris = append(tris, NewTriangle(F, B, D, Yellow), NewTriangle(H, F, D, Yellow))
	// Ceiling
	tris = append(tris, NewTriangle(E, F, G, Cyan), NewTriangle(F, H, G, Cyan))
	// Back wall
	tris = append(tris, NewTriangle(G, D, C, White), NewTriangle(G, H, D, White))

	tris = appendBlock(tris, Red, 165, [4]math3d.Vec3{
		math3d.V3(290, 0, 114),
		math3d.V3(130, 0, 65),
		math3d.V3(240, 0, 272),
		math3d.V3(82, 0, 225),
	})
	tris = appendBlock(tris, Blue, 330, [4]math3d.Vec3{
		math3d.V3(423, 0, 247),
		math3d.V3(265, 0, 296),
		math3d.V3(472, 0, 406),
		math3d.V3(314, 0, 456),
	})

	for i := range tris {
		tris[i].V0 = cornellToView(tris[i].V0)
		tris[i].V1 = cornellToView(tris[i].V1)
		tris[i].V2 = cornellToView(tris[i].V2)
		tris[i].ComputeNormal()
	}
	return tris
}

// appendBlock adds the ten visible faces of a block whose footprint corners
// are base (A, B, C, D) and whose top lies at the given height.
func appendBlock(tris Triangles, color math3d.Vec3, height float64, base [4]math3d.Vec3) Triangles {
	A, B, C, D := base[0], base[1], base[2], base[3]
	up := math3d.V3(0, height, 0)
	E, F, G, H := A.Add(up), B.Add(up), C.Add(up), D.Add(up)

	return append(tris,
		// Front
		NewTriangle(E, B, A, color),
		NewTriangle(E, F, B, color),
		// Front
		NewTriangle(F, D, B, color),
		NewTriangle(F, H, D, color),
		// Back
		NewTriangle(H, C, D, color),
		NewTriangle(H, G, C, color),
		// Left
		NewTriangle(G, E, C, color),
		NewTriangle(E, A, C, color),
		// Top
		NewTriangle(G, F, E, color),
		NewTriangle(G, H, F, color),
	)
}

// cornellToView maps [0,L]^3 authoring coordinates to [-1,1]^3 with x and y
// mirrored.
func cornellToView(v math3d.Vec3) math3d.Vec3 {
	v = v.Scale(2 / cornellSize).Sub(math3d.Splat(1))
	v.X *= -1
	v.Y *= -1
	return v
}

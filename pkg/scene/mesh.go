package scene

import (
	"github.com/taigrr/scanline/pkg/math3d"
)

// DefaultColor is used for faces without a material.
var DefaultColor = White

// Mesh is an indexed triangle mesh as produced by the model loaders.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the flat colour part of a glTF PBR material.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// Color returns the material's RGB base colour.
func (m Material) Color() math3d.Vec3 {
	return math3d.V3(m.BaseColor[0], m.BaseColor[1], m.BaseColor[2])
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Fit centres the mesh on the origin and scales it so its largest dimension
// spans two units. The y and z axes are negated, turning a y-up model that
// faces +z into the renderer's y-down frame, facing a camera on -z.
func (m *Mesh) Fit() {
	size := m.Size()
	maxDim := max(size.X, size.Y, size.Z)
	s := 1.0
	if maxDim > 0 {
		s = 2 / maxDim
	}
	m.Transform(math3d.Scale(math3d.V3(s, -s, -s)).Mul(math3d.Translate(m.Center().Negate())))
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// Triangles flattens the mesh into flat-shaded triangles, one per face,
// coloured by the face's material.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		color := DefaultColor
		if mat := m.GetMaterial(f.Material); mat != nil {
			color = mat.Color()
		}
		tris = append(tris, NewTriangle(
			m.Vertices[f.V[0]],
			m.Vertices[f.V[1]],
			m.Vertices[f.V[2]],
			color,
		))
	}
	return tris
}

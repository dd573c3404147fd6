package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/scanline/pkg/math3d"
)

func ptr(i int) *int { return &i }

// testDocument builds an in-memory document holding one unit quad made of
// two indexed triangles with a red material.
func testDocument() *gltf.Document {
	positions := [][3]float32{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	var data []byte
	for _, p := range positions {
		for _, f := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
		}
	}
	posLen := len(data)
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: len(data) - posLen},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: ptr(0), ComponentType: gltf.ComponentFloat, Count: len(positions), Type: gltf.AccessorVec3},
			{BufferView: ptr(1), ComponentType: gltf.ComponentUshort, Count: len(indices), Type: gltf.AccessorScalar},
		},
		Materials: []*gltf.Material{{
			Name: "red",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{0.8, 0.1, 0.1, 1},
			},
		}},
		Meshes: []*gltf.Mesh{{
			Name: "quad",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Indices:    ptr(1),
				Material:   ptr(0),
				Mode:       gltf.PrimitiveTriangles,
			}},
		}},
	}
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestMeshFromDocument(t *testing.T) {
	mesh, err := meshFromDocument(testDocument(), "quad.glb")
	if err != nil {
		t.Fatalf("meshFromDocument: %v", err)
	}

	if len(mesh.Vertices) != 4 {
		t.Errorf("got %d vertices, want 4", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("got %d faces, want 2", mesh.TriangleCount())
	}

	// Winding is reversed on load.
	if got, want := mesh.Faces[0].V, [3]int{0, 2, 1}; got != want {
		t.Errorf("face 0 = %v, want %v", got, want)
	}
	if mesh.Faces[1].Material != 0 {
		t.Errorf("face 1 material = %d, want 0", mesh.Faces[1].Material)
	}
	if got, want := mesh.BoundsMax, math3d.V3(1, 1, 0); got != want {
		t.Errorf("BoundsMax = %v, want %v", got, want)
	}
}

func TestMeshTrianglesUseMaterialColor(t *testing.T) {
	mesh, err := meshFromDocument(testDocument(), "quad.glb")
	if err != nil {
		t.Fatalf("meshFromDocument: %v", err)
	}

	tris := mesh.Triangles()
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	for i, tri := range tris {
		if want := math3d.V3(0.8, 0.1, 0.1); !tri.Color.ApproxEqual(want, 1e-9) {
			t.Errorf("triangle %d colour = %v, want %v", i, tri.Color, want)
		}
		// The quad faces +z in glTF; with reversed winding the normal
		// computed by ComputeNormal points along +z too.
		if want := math3d.V3(0, 0, 1); !tri.Normal.ApproxEqual(want, 1e-9) {
			t.Errorf("triangle %d normal = %v, want %v", i, tri.Normal, want)
		}
	}
}

func TestMeshFromDocumentBadIndex(t *testing.T) {
	doc := testDocument()
	// Point the index accessor at the second position, whose float bits
	// decode to out-of-range indices.
	doc.Accessors[1].BufferView = ptr(0)
	doc.Accessors[1].ByteOffset = 12
	doc.Accessors[1].Count = 6

	if _, err := meshFromDocument(doc, "bad.glb"); err == nil {
		t.Error("expected error for out-of-range indices")
	}
}

func TestReadAccessorOverrun(t *testing.T) {
	doc := testDocument()
	doc.Accessors[0].Count = 100

	if _, err := readVec3Accessor(doc, 0); err == nil {
		t.Error("expected error for accessor larger than its buffer")
	}
}

func TestMeshFit(t *testing.T) {
	mesh := NewMesh("box")
	mesh.Vertices = []math3d.Vec3{
		math3d.V3(10, 20, 30),
		math3d.V3(14, 22, 31),
	}
	mesh.CalculateBounds()
	mesh.Fit()

	if got := mesh.Center(); !got.ApproxEqual(math3d.Zero3(), 1e-9) {
		t.Errorf("centre after Fit = %v, want origin", got)
	}
	if got, want := mesh.Size(), math3d.V3(2, 1, 0.5); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("size after Fit = %v, want %v", got, want)
	}
	// y is mirrored: the higher vertex ends up with the smaller y.
	if mesh.Vertices[1].Y >= mesh.Vertices[0].Y {
		t.Errorf("expected y to be mirrored, got %v", mesh.Vertices)
	}
}

func TestGetMaterialBounds(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Materials = []Material{{Name: "red", BaseColor: [4]float64{1, 0, 0, 1}}}

	if mat := mesh.GetMaterial(0); mat == nil || mat.Name != "red" {
		t.Errorf("GetMaterial(0) should return 'red' material")
	}
	if mesh.GetMaterial(-1) != nil {
		t.Errorf("GetMaterial(-1) should return nil")
	}
	if mesh.GetMaterial(99) != nil {
		t.Errorf("GetMaterial(99) should return nil for out-of-bounds")
	}
}

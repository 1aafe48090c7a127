package scene

// Attribute locations shared by the demo shaders.
const (
	LocPosition uint32 = 0
	LocColor    uint32 = 1
	LocTexCoord uint32 = 2
)

// IndexedCube returns the 8 corners of a cube spanning -1..1 with 36
// indices, two triangles per face. Position only.
func IndexedCube() *Mesh {
	return &Mesh{
		Vertices: []float32{
			-1, -1, -1,
			1, -1, -1,
			1, 1, -1,
			-1, 1, -1,
			-1, -1, 1,
			1, -1, 1,
			1, 1, 1,
			-1, 1, 1,
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // back
			4, 5, 6, 6, 7, 4, // front
			0, 4, 7, 7, 3, 0, // left
			1, 5, 6, 6, 2, 1, // right
			3, 2, 6, 6, 7, 3, // top
			0, 1, 5, 5, 4, 0, // bottom
		},
		Attribs: []Attrib{{Location: LocPosition, Size: 3}},
	}
}

// ColoredQuad returns a unit quad centered on the origin with a color per
// corner.
func ColoredQuad() *Mesh {
	return &Mesh{
		Vertices: []float32{
			// position      color
			0.5, 0.5, 0, 0, 0, 1, // top right
			0.5, -0.5, 0, 1, 0, 0, // bottom right
			-0.5, -0.5, 0, 0, 1, 0, // bottom left
			-0.5, 0.5, 0, 1, 0, 0, // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Attribs: []Attrib{
			{Location: LocPosition, Size: 3},
			{Location: LocColor, Size: 3},
		},
	}
}

// cubeFaces lists each face of a 0.5 half-extent cube as two triangles, and
// the texture coordinates of each corner.
var cubeFaces = [6][6][5]float32{
	{ // back
		{-0.5, -0.5, -0.5, 0, 0},
		{0.5, -0.5, -0.5, 1, 0},
		{0.5, 0.5, -0.5, 1, 1},
		{0.5, 0.5, -0.5, 1, 1},
		{-0.5, 0.5, -0.5, 0, 1},
		{-0.5, -0.5, -0.5, 0, 0},
	},
	{ // front
		{-0.5, -0.5, 0.5, 0, 0},
		{0.5, -0.5, 0.5, 1, 0},
		{0.5, 0.5, 0.5, 1, 1},
		{0.5, 0.5, 0.5, 1, 1},
		{-0.5, 0.5, 0.5, 0, 1},
		{-0.5, -0.5, 0.5, 0, 0},
	},
	{ // left
		{-0.5, 0.5, 0.5, 1, 0},
		{-0.5, 0.5, -0.5, 1, 1},
		{-0.5, -0.5, -0.5, 0, 1},
		{-0.5, -0.5, -0.5, 0, 1},
		{-0.5, -0.5, 0.5, 0, 0},
		{-0.5, 0.5, 0.5, 1, 0},
	},
	{ // right
		{0.5, 0.5, 0.5, 1, 0},
		{0.5, 0.5, -0.5, 1, 1},
		{0.5, -0.5, -0.5, 0, 1},
		{0.5, -0.5, -0.5, 0, 1},
		{0.5, -0.5, 0.5, 0, 0},
		{0.5, 0.5, 0.5, 1, 0},
	},
	{ // bottom
		{-0.5, -0.5, -0.5, 0, 1},
		{0.5, -0.5, -0.5, 1, 1},
		{0.5, -0.5, 0.5, 1, 0},
		{0.5, -0.5, 0.5, 1, 0},
		{-0.5, -0.5, 0.5, 0, 0},
		{-0.5, -0.5, -0.5, 0, 1},
	},
	{ // top
		{-0.5, 0.5, -0.5, 0, 1},
		{0.5, 0.5, -0.5, 1, 1},
		{0.5, 0.5, 0.5, 1, 0},
		{0.5, 0.5, 0.5, 1, 0},
		{-0.5, 0.5, 0.5, 0, 0},
		{-0.5, 0.5, -0.5, 0, 1},
	},
}

// FaceColors are the per-face colors of ColoredCube, in face order
// back, front, left, right, bottom, top.
var FaceColors = [6][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{0, 1, 1},
	{1, 0, 1},
}

// TexturedCube returns 36 vertices with position and texture coordinates.
func TexturedCube() *Mesh {
	verts := make([]float32, 0, 36*5)
	for _, face := range cubeFaces {
		for _, v := range face {
			verts = append(verts, v[:]...)
		}
	}
	return &Mesh{
		Vertices: verts,
		Attribs: []Attrib{
			{Location: LocPosition, Size: 3},
			{Location: LocTexCoord, Size: 2},
		},
	}
}

// ColoredCube returns 36 vertices with position and a solid color per face.
func ColoredCube() *Mesh {
	verts := make([]float32, 0, 36*6)
	for i, face := range cubeFaces {
		c := FaceColors[i]
		for _, v := range face {
			verts = append(verts, v[0], v[1], v[2], c[0], c[1], c[2])
		}
	}
	return &Mesh{
		Vertices: verts,
		Attribs: []Attrib{
			{Location: LocPosition, Size: 3},
			{Location: LocColor, Size: 3},
		},
	}
}

package glcore

// Vertex is a position in normalized device coordinates.
// Memory layout matches PositionAttribute.
type Vertex [3]float32

// TriangleVertices is the single triangle drawn by the example.
var TriangleVertices = []Vertex{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// DefaultClearColor is the dark teal background of the tutorial.
var DefaultClearColor = Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0}

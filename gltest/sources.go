package gltest

// Sources accepted by the double, shared by tests across packages.
const (
	// VertexSource passes the position through unchanged.
	VertexSource = `#version 330 core
layout (location = 0) in vec3 pos;

void main() {
    gl_Position = vec4(pos.x, pos.y, pos.z, 1.0);
}
`

	// FragmentSource writes a solid orange.
	FragmentSource = `#version 330 core
out vec4 final_color;

void main() {
    final_color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

	// VaryingVertexSource hands a color to the fragment stage.
	VaryingVertexSource = `#version 330 core
layout (location = 0) in vec3 pos;
out vec4 vertex_color;

void main() {
    gl_Position = vec4(pos, 1.0);
    vertex_color = vec4(0.5, 0.0, 0.0, 1.0);
}
`

	// VaryingFragmentSource reads the color written by VaryingVertexSource.
	// Linked with VertexSource it fails: nothing writes vertex_color.
	VaryingFragmentSource = `#version 330 core
in vec4 vertex_color;
out vec4 final_color;

void main() {
    final_color = vertex_color;
}
`

	// BrokenSource is missing a closing brace.
	BrokenSource = `#version 330 core
void main() {
    gl_Position = vec4(0.0);
`
)

package outline

// Attribute and uniform names shared by the GLSL sources and the backends
const (
	AttrPosition = "vertexPosition"
	AttrNormal   = "vertexNormal"

	UniformMVP            = "mvp"
	UniformModel          = "matModel"
	UniformCameraPosition = "cameraPosition"
	UniformScale          = "scalingFactor"
	UniformColor          = "outlineColor"
)

const rimVertexSource = `#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform float scalingFactor;

out vec3 fragPosition;
out vec3 fragNormal;

void main()
{
    vec3 displaced = vertexPosition + vertexNormal*vec3(scalingFactor);
    fragPosition = vec3(matModel*vec4(vertexPosition, 1.0));
    fragNormal = mat3(matModel)*vertexNormal;
    gl_Position = mvp*vec4(displaced, 1.0);
}
`

const rimFragmentSource = `#version 330

in vec3 fragPosition;
in vec3 fragNormal;

uniform vec3 cameraPosition;
uniform vec3 outlineColor;
uniform float scalingFactor;

out vec4 finalColor;

void main()
{
    vec3 viewDirection = normalize(cameraPosition - fragPosition);
    float facing = dot(normalize(fragNormal), viewDirection);
    if (facing > (0.4 + scalingFactor)) discard;
    finalColor = vec4(outlineColor, 1.0);
}
`

const shellVertexSource = `#version 330

in vec3 vertexPosition;

uniform mat4 mvp;
uniform float scalingFactor;

void main()
{
    gl_Position = mvp*vec4(vertexPosition*vec3(scalingFactor), 1.0);
}
`

const shellFragmentSource = `#version 330

uniform vec3 outlineColor;

out vec4 finalColor;

void main()
{
    finalColor = vec4(outlineColor, 1.0);
}
`

// Sources returns the vertex and fragment GLSL for a style
func Sources(s Style) (vertex, fragment string) {
	switch s {
	case ScaledShell:
		return shellVertexSource, shellFragmentSource
	default:
		return rimVertexSource, rimFragmentSource
	}
}

// Attributes returns the vertex attributes the style's program consumes
func Attributes(s Style) []string {
	if s == ScaledShell {
		return []string{AttrPosition}
	}
	return []string{AttrPosition, AttrNormal}
}

// Uniforms returns the uniforms the style's program declares
func Uniforms(s Style) []string {
	if s == ScaledShell {
		return []string{UniformMVP, UniformScale, UniformColor}
	}
	return []string{UniformMVP, UniformModel, UniformCameraPosition, UniformScale, UniformColor}
}

package blocks

const blockVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
layout (location = 2) in vec3 aNormal;

out vec3 Color;
out vec3 Normal;

uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * vec4(aPos, 1.0);
    Color = aColor;
    Normal = aNormal;
}
`

const blockFragmentShader = `#version 410 core
in vec3 Color;
in vec3 Normal;

out vec4 FragColor;

uniform vec3 lightDir;

void main() {
    float diff = max(dot(normalize(Normal), normalize(-lightDir)), 0.0);
    vec3 shaded = Color * (0.35 + 0.65 * diff);
    FragColor = vec4(shaded, 1.0);
}
`

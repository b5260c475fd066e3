// Command render opens a window showing the same voxel sphere meshed twice:
// once with per-face visibility culling and once with greedy quad merging.
// An orbit camera circles both meshes; press Escape to quit.
package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/edaniels/golog"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"blockmesh/internal/render"
	"blockmesh/pkg/geometry"
	"blockmesh/pkg/meshing"
	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

// ball is the demo voxel: a boolean solid with a single material.
type ball bool

func (b ball) Visibility() voxel.Visibility {
	if b {
		return voxel.Opaque
	}
	return voxel.Empty
}

func (b ball) MergeValue() bool { return bool(b) }

func (b ball) MergeValueFacingNeighbor() bool { return bool(b) }

func init() {
	runtime.LockOSThread()
}

func main() {
	radius := flag.Float64("radius", 15, "sphere radius in voxels (max 15.5)")
	flag.Parse()

	logger := golog.NewDevelopmentLogger("render")

	var s shape.Padded34
	voxels := sphereVoxels(s, *radius)
	cfg := geometry.RightHandedYUp()
	min := [3]uint32{0, 0, 0}
	max := [3]uint32{shape.Padded34Dim - 1, shape.Padded34Dim - 1, shape.Padded34Dim - 1}

	var simpleMesh, greedyMesh meshing.MeshBuffer

	start := time.Now()
	var unitQuads meshing.UnitQuadBuffer
	if err := meshing.VisibleFaces(voxels, s, min, max, &cfg, &unitQuads); err != nil {
		logger.Fatal(err)
	}
	simpleMesh.AppendUnitQuadBuffer(&cfg, &unitQuads, 1)
	logger.Infof("visible faces: %d quads in %s", unitQuads.NumQuads(), time.Since(start))

	start = time.Now()
	greedyQuads := meshing.NewGreedyBuffer(len(voxels))
	if err := meshing.GreedyQuads[bool](voxels, s, min, max, &cfg, greedyQuads); err != nil {
		logger.Fatal(err)
	}
	greedyMesh.AppendQuadBuffer(&cfg, &greedyQuads.Quads, 1)
	logger.Infof("greedy quads: %d quads in %s", greedyQuads.Quads.NumQuads(), time.Since(start))

	if err := glfw.Init(); err != nil {
		logger.Fatal(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "blockmesh - simple vs greedy", nil, nil)
	if err != nil {
		logger.Fatal(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		logger.Fatal(err)
	}

	shader, err := render.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		logger.Fatal(err)
	}
	defer shader.Delete()

	simple := render.UploadMesh(&simpleMesh)
	defer simple.Delete()
	greedy := render.UploadMesh(&greedyMesh)
	defer greedy.Delete()

	camera := render.NewOrbitCamera(mgl32.Vec3{0, 0, 0}, 90, windowWidth, windowHeight)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.09, 0.11, 1.0)

	half := float32(shape.Padded34Dim) / 2
	simpleModel := mgl32.Translate3D(-half-22, -half, -half)
	greedyModel := mgl32.Translate3D(-half+22, -half, -half)

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		camera.Yaw = float32(glfw.GetTime()) * 0.4
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		shader.SetMatrix4("view", camera.ViewMatrix())
		shader.SetMatrix4("projection", camera.ProjectionMatrix())
		shader.SetVector3("lightDir", mgl32.Vec3{0.5, 1, 0.3}.Normalize())

		shader.SetMatrix4("model", simpleModel)
		shader.SetVector3("baseColor", mgl32.Vec3{0.8, 0.5, 0.3})
		simple.Draw()

		shader.SetMatrix4("model", greedyModel)
		shader.SetVector3("baseColor", mgl32.Vec3{0.3, 0.6, 0.8})
		greedy.Draw()

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func sphereVoxels(s shape.Padded34, radius float64) []ball {
	voxels := make([]ball, s.Size())
	c := float64(shape.Padded34Dim) / 2
	for i := uint32(0); i < s.Size(); i++ {
		p := s.Delinearize(i)
		dx := float64(p[0]) + 0.5 - c
		dy := float64(p[1]) + 0.5 - c
		dz := float64(p[2]) + 0.5 - c
		voxels[i] = ball(dx*dx+dy*dy+dz*dz < radius*radius)
	}
	return voxels
}

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 uv;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragNormal;
out vec2 fragUV;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
	fragNormal = mat3(model) * normal;
	fragUV = uv;
}`

const fragmentShaderSrc = `#version 410 core
in vec3 fragNormal;
in vec2 fragUV;

uniform vec3 lightDir;
uniform vec3 baseColor;

out vec4 fragColor;

void main() {
	float diffuse = max(dot(normalize(fragNormal), lightDir), 0.0);
	// faint checker from the quad-local UVs so merged quads stay readable
	float checker = mod(floor(fragUV.x) + floor(fragUV.y), 2.0) * 0.08;
	vec3 color = baseColor * (0.25 + 0.75 * diffuse) + vec3(checker);
	fragColor = vec4(color, 1.0);
}`

// Package gfx owns the triangle mesh, the fragment shader, and the per-frame
// draw call.
package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"trihop/hal"
	"trihop/xform"
)

// The triangle color, matching the shader's fixed output.
const (
	triR = 0.4
	triG = 0.8
	triB = 0.6
)

// fragmentShaderSrc emits a fixed opaque color. The vertex stage of the
// original pipeline (uniform mat4 times position) has no Kage equivalent;
// Draw applies the transform on the CPU before the draw call instead.
const fragmentShaderSrc = `//kage:unit pixels

package main

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	return vec4(0.4, 0.8, 0.6, 1.0)
}
`

// triangleMesh is the static 3-vertex, 3-floats-per-vertex mesh, in
// normalized device coordinates.
var triangleMesh = [9]float32{
	0.0, 0.25, 0.0, // top
	-0.25, -0.25, 0.0, // bottom-left
	0.25, -0.25, 0.0, // bottom-right
}

// Mesh returns a copy of the static triangle mesh.
func Mesh() [9]float32 { return triangleMesh }

// Pipeline draws the triangle with the compiled fragment shader, or with a
// flat-color fallback when compilation failed.
type Pipeline struct {
	shader *ebiten.Shader
	white  *ebiten.Image
}

// NewPipeline compiles the fragment shader. Compilation failure is not
// fatal: the diagnostic goes to the logger and drawing falls back to the
// flat-color path.
func NewPipeline(log hal.Logger) *Pipeline {
	return &Pipeline{shader: compileFragment([]byte(fragmentShaderSrc), log)}
}

func compileFragment(src []byte, log hal.Logger) *ebiten.Shader {
	sh, err := ebiten.NewShader(src)
	if err != nil {
		log.WriteLineString("gfx: fragment shader compile failed: " + err.Error())
		return nil
	}
	return sh
}

// Draw issues the 3-vertex triangle-list draw with the given transform.
func (p *Pipeline) Draw(dst *ebiten.Image, m xform.Mat4) {
	b := dst.Bounds()
	vs := buildVertices(m, b.Dx(), b.Dy())
	is := []uint16{0, 1, 2}

	if p.shader != nil {
		dst.DrawTrianglesShader(vs[:], is, p.shader, nil)
		return
	}
	if p.white == nil {
		p.white = newWhiteImage()
	}
	dst.DrawTriangles(vs[:], is, p.white, nil)
}

// buildVertices applies the transform to the mesh and maps normalized device
// coordinates to the viewport.
func buildVertices(m xform.Mat4, w, h int) [3]ebiten.Vertex {
	var vs [3]ebiten.Vertex
	for i := 0; i < 3; i++ {
		x, y, _ := m.Apply(
			float64(triangleMesh[i*3+0]),
			float64(triangleMesh[i*3+1]),
			float64(triangleMesh[i*3+2]),
		)
		sx, sy := ndcToScreen(x, y, w, h)
		vs[i] = ebiten.Vertex{
			DstX: sx,
			DstY: sy,
			// Inside the white source pixel; used by the fallback path only.
			SrcX:   1,
			SrcY:   1,
			ColorR: triR,
			ColorG: triG,
			ColorB: triB,
			ColorA: 1,
		}
	}
	return vs
}

// ndcToScreen maps [-1,1] device coordinates to pixels, Y down.
func ndcToScreen(x, y float64, w, h int) (float32, float32) {
	return float32((x + 1) / 2 * float64(w)), float32((1 - y) / 2 * float64(h))
}

func newWhiteImage() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

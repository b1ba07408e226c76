package app

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"racer/internal/game"
)

// Camera maps track-space to the framebuffer. X/Y is the world point at
// the screen center.
type Camera struct {
	X, Y, Zoom float64
}

// Renderer draws published engine snapshots: flat-colored triangles for
// road and cars, additive point sprites for impact flashes.
type Renderer struct {
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32

	shUCamera     int32
	shUZoom       int32
	shUResolution int32

	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Reused per-frame vertex buffers.
	shapes  []float32
	sprites []float32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	prog, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, err
	}
	r.shapeProg = prog
	r.shUCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	r.shUZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	r.shUResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.GenVertexArrays(1, &r.shapeVAO)
	gl.GenBuffers(1, &r.shapeVBO)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, 6*4, 2*4)

	prog, err = linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, err
	}
	r.spriteProg = prog
	r.spUCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 7*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 7*4, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, 7*4, 3*4)

	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.shapeProg)
	gl.DeleteProgram(r.spriteProg)
	gl.DeleteVertexArrays(1, &r.shapeVAO)
	gl.DeleteVertexArrays(1, &r.spriteVAO)
	gl.DeleteBuffers(1, &r.shapeVBO)
	gl.DeleteBuffers(1, &r.spriteVBO)
}

var opponentColors = [][3]float32{
	{0.86, 0.30, 0.24},
	{0.26, 0.56, 0.86},
	{0.88, 0.72, 0.22},
	{0.55, 0.36, 0.78},
	{0.30, 0.74, 0.48},
	{0.84, 0.48, 0.20},
	{0.62, 0.66, 0.70},
}

// DrawFrame rebuilds the scene from the latest snapshot and draws it.
func (r *Renderer) DrawFrame(snap *game.Snapshot, track *game.Track, fbW, fbH int) {
	cam := Camera{
		X:    (game.RoadLeft + game.RoadRight) / 2,
		Y:    400,
		Zoom: float64(fbW) / 800.0,
	}
	r.shapes = r.shapes[:0]
	r.sprites = r.sprites[:0]

	r.buildRoad(snap, track, cam, fbW, fbH)
	r.buildCars(snap)
	r.buildHUD(snap, cam, fbW, fbH)

	gl.ClearColor(0.13, 0.32, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.drawShapes(cam, fbW, fbH)
	r.drawSprites(cam, fbW, fbH)
}

// buildRoad emits the visible band of the corridor: asphalt, edge lines,
// dashed lane stripes and cosmetic elevation shading.
func (r *Renderer) buildRoad(snap *game.Snapshot, track *game.Track, cam Camera, fbW, fbH int) {
	half := (game.RoadRight - game.RoadLeft) / 2
	top := cam.Y - float64(fbH)/(2*cam.Zoom) - 60
	bottom := cam.Y + float64(fbH)/(2*cam.Zoom) + 60

	const step = 40.0
	asphalt := [4]float32{0.17, 0.17, 0.19, 1}
	edge := [4]float32{0.92, 0.92, 0.92, 1}
	stripe := [4]float32{0.95, 0.85, 0.30, 1}

	trackMod := func(d float64) float64 {
		d = math.Mod(d, track.Length)
		if d < 0 {
			d += track.Length
		}
		return d
	}

	for wy := top; wy < bottom; wy += step {
		ty0 := snap.Scroll + (wy - game.PlayerBaselineY)
		ty1 := ty0 + step
		c0 := track.CenterXAt(ty0)
		c1 := track.CenterXAt(ty1)

		// Asphalt slab.
		r.pushQuad(c0-half, wy, c1-half, wy+step, c0+half, c1+half, asphalt)

		// Edge lines.
		r.pushQuad(c0-half, wy, c1-half, wy+step, c0-half+6, c1-half+6, edge)
		r.pushQuad(c0+half-6, wy, c1+half-6, wy+step, c0+half, c1+half, edge)
	}

	// Dashed stripes on the two lane boundaries (centerline ± half a
	// lane width).
	for _, bOff := range [2]float64{-game.LaneWidth / 2, game.LaneWidth / 2} {
		for wy := top; wy < bottom; wy += 30 {
			ty := snap.Scroll + (wy - game.PlayerBaselineY)
			if math.Mod(trackMod(ty), 120) > 60 {
				continue
			}
			c := track.CenterXAt(ty)
			r.pushRect(c+bOff-4, wy, 8, 30, stripe)
		}
	}

	// Elevation markers: faint lighter bands.
	for _, e := range track.Elevations {
		wy := game.PlayerBaselineY + (e.Y - trackMod(snap.Scroll))
		if wy < top || wy > bottom {
			continue
		}
		c := track.CenterXAt(e.Y)
		r.pushRect(c-half, wy, 2*half, 14, [4]float32{0.30, 0.30, 0.33, 1})
	}
}

func (r *Renderer) buildCars(snap *game.Snapshot) {
	for i, o := range snap.Opponents {
		col := opponentColors[i%len(opponentColors)]
		r.pushCar(o, [4]float32{col[0], col[1], col[2], 1})
		if o.Scale > 1.05 {
			r.pushFlash(o)
		}
	}
	p := snap.Player
	r.pushCar(p, [4]float32{0.95, 0.95, 0.98, 1})
	if p.Scale > 1.05 {
		r.pushFlash(p)
	}
}

// buildHUD draws the health and speed bars along the screen edges.
func (r *Renderer) buildHUD(snap *game.Snapshot, cam Camera, fbW, fbH int) {
	left := cam.X - float64(fbW)/(2*cam.Zoom)
	top := cam.Y - float64(fbH)/(2*cam.Zoom)
	w := float64(fbW) / cam.Zoom

	// Health bar.
	barW := w * 0.4
	r.pushRect(left+20, top+20, barW, 14, [4]float32{0.10, 0.10, 0.10, 0.8})
	hpCol := [4]float32{0.25, 0.85, 0.25, 1}
	if snap.HPFraction < 0.3 {
		hpCol = [4]float32{0.85, 0.25, 0.25, 1}
	} else if snap.HPFraction < 0.6 {
		hpCol = [4]float32{0.85, 0.85, 0.25, 1}
	}
	r.pushRect(left+20, top+20, barW*snap.HPFraction, 14, hpCol)

	// Speed bar.
	frac := snap.Speed / game.PlayerMaxSpeed
	r.pushRect(left+20, top+44, barW, 8, [4]float32{0.10, 0.10, 0.10, 0.8})
	r.pushRect(left+20, top+44, barW*frac, 8, [4]float32{0.30, 0.60, 0.95, 1})
}

// pushQuad emits a vertical slab with independent left/right X at top and
// bottom edges (follows the curving centerline).
func (r *Renderer) pushQuad(lx0, y0, lx1, y1, rx0, rx1 float64, col [4]float32) {
	r.pushTri(lx0, y0, rx0, y0, rx1, y1, col)
	r.pushTri(lx0, y0, rx1, y1, lx1, y1, col)
}

func (r *Renderer) pushRect(x, y, w, h float64, col [4]float32) {
	r.pushTri(x, y, x+w, y, x+w, y+h, col)
	r.pushTri(x, y, x+w, y+h, x, y+h, col)
}

func (r *Renderer) pushTri(x0, y0, x1, y1, x2, y2 float64, col [4]float32) {
	r.shapes = append(r.shapes,
		float32(x0), float32(y0), col[0], col[1], col[2], col[3],
		float32(x1), float32(y1), col[0], col[1], col[2], col[3],
		float32(x2), float32(y2), col[0], col[1], col[2], col[3],
	)
}

// pushCar emits a heading-rotated rectangle around the car's anchor
// (anchor is the rear edge center; the body extends one CarHeight ahead).
func (r *Renderer) pushCar(pose game.CarPose, col [4]float32) {
	w := game.CarWidth * pose.Scale
	h := game.CarHeight * pose.Scale
	cx := pose.X
	cy := pose.Y - h/2
	sin, cos := math.Sincos(pose.Rotation)

	rot := func(dx, dy float64) (float64, float64) {
		return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
	}
	x0, y0 := rot(-w/2, -h/2)
	x1, y1 := rot(w/2, -h/2)
	x2, y2 := rot(w/2, h/2)
	x3, y3 := rot(-w/2, h/2)
	r.pushTri(x0, y0, x1, y1, x2, y2, col)
	r.pushTri(x0, y0, x2, y2, x3, y3, col)

	// Windshield hint.
	wx0, wy0 := rot(-w/4, -h/4)
	wx1, wy1 := rot(w/4, -h/4)
	wx2, wy2 := rot(w/4, 0)
	wx3, wy3 := rot(-w/4, 0)
	glass := [4]float32{0.12, 0.16, 0.22, 1}
	r.pushTri(wx0, wy0, wx1, wy1, wx2, wy2, glass)
	r.pushTri(wx0, wy0, wx2, wy2, wx3, wy3, glass)
}

// pushFlash emits an additive impact glow while a car's impact scale is
// still recovering.
func (r *Renderer) pushFlash(pose game.CarPose) {
	strength := float32((pose.Scale - 1) / 0.35)
	r.sprites = append(r.sprites,
		float32(pose.X), float32(pose.Y-game.CarHeight/2),
		float32(game.CarWidth*2.2),
		0.95*strength, 0.55*strength, 0.18*strength, 1,
	)
}

func (r *Renderer) drawShapes(cam Camera, fbW, fbH int) {
	if len(r.shapes) == 0 {
		return
	}
	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)

	gl.Uniform2f(r.shUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.shUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.shUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.shapes)*4, gl.Ptr(r.shapes), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.shapes)/6))
	gl.Disable(gl.BLEND)
}

func (r *Renderer) drawSprites(cam Camera, fbW, fbH int) {
	if len(r.sprites) == 0 {
		return
	}
	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.sprites)*4, gl.Ptr(r.sprites), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.sprites)/7))
	gl.Disable(gl.BLEND)
}

//go:build !tinygo

package main

import (
	"image"
	"image/draw"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"picoplot-go/services/app"
	"picoplot-go/services/canvas"
	"picoplot-go/services/clock"
)

// runWindow shows the panel scaled up and advances minutesPerFrame
// simulated minutes every frame. It blocks until the window closes.
func runWindow(title string, loop *app.Loop, clk *clock.Soft, frame *canvas.Frame, zoom, minutesPerFrame int) error {
	b := frame.Bounds()
	g := &simGame{
		loop:  loop,
		clk:   clk,
		frame: frame,
		step:  max(minutesPerFrame, 1),
		img:   image.NewRGBA(b),
		fbImg: ebiten.NewImage(b.Dx(), b.Dy()),
	}
	ebiten.SetWindowTitle("picoplot (" + title + ")")
	ebiten.SetWindowSize(b.Dx()*max(zoom, 1), b.Dy()*max(zoom, 1))
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type simGame struct {
	loop  *app.Loop
	clk   *clock.Soft
	frame *canvas.Frame
	step  int
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *simGame) Update() error {
	for i := 0; i < g.step; i++ {
		g.loop.Step()
		g.clk.Set(g.clk.Now().Add(time.Minute))
	}
	return nil
}

func (g *simGame) Draw(screen *ebiten.Image) {
	draw.Draw(g.img, g.img.Bounds(), g.frame, image.Point{}, draw.Src)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *simGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.frame.Bounds()
	return b.Dx(), b.Dy()
}

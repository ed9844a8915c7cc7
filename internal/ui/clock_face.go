package ui

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// Face tints and hand colors. The dial background follows the projection's
// day/night classification.
var (
	faceDayColor   = color.NRGBA{R: 0xfd, G: 0xf6, B: 0xe3, A: 0xff}
	faceNightColor = color.NRGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}
	handDayColor   = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	handNightColor = color.NRGBA{R: 0xec, G: 0xef, B: 0xf1, A: 0xff}
	secondColor    = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
)

// ClockFace is an analog dial whose hands follow a Projection. It holds no
// clock of its own: callers push a fresh projection on every tick.
type ClockFace struct {
	widget.BaseWidget

	mu         sync.RWMutex
	projection engine.Projection
}

// NewClockFace creates an empty dial; hands point to 12 until the first
// SetProjection call.
func NewClockFace() *ClockFace {
	face := &ClockFace{}
	face.ExtendBaseWidget(face)
	return face
}

// SetProjection reorients the hands and retints the face.
func (c *ClockFace) SetProjection(p engine.Projection) {
	c.mu.Lock()
	c.projection = p
	c.mu.Unlock()
	c.Refresh()
}

// Projection returns the last pushed projection.
func (c *ClockFace) Projection() engine.Projection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projection
}

// CreateRenderer implements fyne.Widget.
func (c *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	dial := canvas.NewCircle(faceDayColor)
	dial.StrokeColor = handDayColor
	dial.StrokeWidth = 2

	hour := canvas.NewLine(handDayColor)
	hour.StrokeWidth = config.HourHandWidth
	minute := canvas.NewLine(handDayColor)
	minute.StrokeWidth = config.MinuteHandWidth
	second := canvas.NewLine(secondColor)
	second.StrokeWidth = config.SecondHandWidth

	pin := canvas.NewCircle(secondColor)

	return &clockFaceRenderer{
		face:       c,
		dial:       dial,
		hourHand:   hour,
		minuteHand: minute,
		secondHand: second,
		pin:        pin,
	}
}

type clockFaceRenderer struct {
	face *ClockFace

	dial       *canvas.Circle
	hourHand   *canvas.Line
	minuteHand *canvas.Line
	secondHand *canvas.Line
	pin        *canvas.Circle
}

func (r *clockFaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(config.ClockFaceMinSize, config.ClockFaceMinSize)
}

func (r *clockFaceRenderer) Layout(size fyne.Size) {
	center := fyne.NewPos(size.Width/2, size.Height/2)
	radius := float32(math.Min(float64(size.Width), float64(size.Height)))/2 - config.ClockFacePadding

	r.dial.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	r.dial.Resize(fyne.NewSize(radius*2, radius*2))

	p := r.face.Projection()

	r.hourHand.Position1 = center
	r.hourHand.Position2 = handPoint(center, radius*config.HourHandRatio, p.HourAngle)
	r.minuteHand.Position1 = center
	r.minuteHand.Position2 = handPoint(center, radius*config.MinuteHandRatio, p.MinuteAngle)
	r.secondHand.Position1 = center
	r.secondHand.Position2 = handPoint(center, radius*config.SecondHandRatio, p.SecondAngle)

	pinHalf := config.ClockFacePinSize / 2
	r.pin.Move(fyne.NewPos(center.X-pinHalf, center.Y-pinHalf))
	r.pin.Resize(fyne.NewSize(config.ClockFacePinSize, config.ClockFacePinSize))
}

func (r *clockFaceRenderer) Refresh() {
	p := r.face.Projection()

	if p.IsDaytime {
		r.dial.FillColor = faceDayColor
		r.dial.StrokeColor = handDayColor
		r.hourHand.StrokeColor = handDayColor
		r.minuteHand.StrokeColor = handDayColor
	} else {
		r.dial.FillColor = faceNightColor
		r.dial.StrokeColor = handNightColor
		r.hourHand.StrokeColor = handNightColor
		r.minuteHand.StrokeColor = handNightColor
	}

	r.Layout(r.face.Size())
	canvas.Refresh(r.face)
}

func (r *clockFaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dial, r.hourHand, r.minuteHand, r.secondHand, r.pin}
}

func (r *clockFaceRenderer) Destroy() {}

// handPoint returns the endpoint of a hand of the given length, rotated
// angleDeg degrees clockwise from the 12 o'clock position around center.
func handPoint(center fyne.Position, length float32, angleDeg float64) fyne.Position {
	rad := angleDeg * math.Pi / 180
	return fyne.NewPos(
		center.X+length*float32(math.Sin(rad)),
		center.Y-length*float32(math.Cos(rad)),
	)
}

package whale

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// Visual glyphs. Two-cell glyphs line up with the two-column step.
const (
	WhaleGlyph   = "<@"
	StunnedGlyph = "<x"
	KrillGlyph   = "°°"
	BoatGlyph    = "◢◣"
	HarpoonChar  = '↓'
	WaveChar     = '≈'
	TrendUp      = '↗'
	TrendDown    = '↘'
)

// scoreRow is where the score bar is drawn.
const scoreRow = 1

// Render draws the current state of the round to the screen.
func (e *Engine) Render(dst *core.Screen) {
	RenderSnapshot(e.Snapshot(), dst)
}

// RenderSnapshot draws a snapshot to the screen. The whale is drawn last
// so it stays visible on top of krill and harpoons.
func RenderSnapshot(s Snapshot, dst *core.Screen) {
	dst.Clear()

	drawScoreBar(dst, s.Stats)
	dst.DrawHLine(0, s.WaveLine, s.Field.W, WaveChar, core.ColorSea)

	for _, k := range s.Krill {
		dst.DrawTextColor(k.X, k.Y, KrillGlyph, core.ColorKrill)
	}
	for _, b := range s.Boats {
		dst.DrawTextColor(b.X, b.Y, BoatGlyph, core.ColorBoat)
	}
	for _, h := range s.Harpoons {
		dst.SetCell(h.X, h.Y, HarpoonChar, core.ColorHarpoon)
	}

	if s.Stunned {
		dst.DrawTextColor(s.Whale.X, s.Whale.Y, StunnedGlyph, core.ColorStunned)
	} else {
		dst.DrawTextColor(s.Whale.X, s.Whale.Y, WhaleGlyph, core.ColorWhale)
	}

	if s.State == StateEnded {
		drawCenteredMessage(dst, "ROUND OVER", fmt.Sprintf("krill %d | hits %d", s.Stats.Collected, s.Stats.Hits))
	}
}

// barSegment is a run of score bar text in one color.
type barSegment struct {
	text  string
	color core.Color
}

// scoreBarLayout is one way to lay out the score bar.
type scoreBarLayout struct {
	margin   int
	segments []barSegment
}

func (l scoreBarLayout) width() int {
	w := l.margin
	for _, s := range l.segments {
		w += utf8.RuneCountInString(s.text)
	}
	return w
}

// scoreBarLayouts returns the layouts from most to least roomy. The compact
// one uses the krill and harpoon glyphs as labels so a minimum-size field
// still shows every statistic.
func scoreBarLayouts(r Report) []scoreBarLayout {
	trend, color := TrendUp, core.ColorGood
	if !r.Good() {
		trend, color = TrendDown, core.ColorBad
	}

	return []scoreBarLayout{
		{margin: 2, segments: []barSegment{
			{"krill", core.ColorKrill},
			{fmt.Sprintf(" %-5d  ", r.Collected), core.ColorDefault},
			{"hits", core.ColorBad},
			{fmt.Sprintf(" %-5d  ", r.Hits), core.ColorDefault},
			{string(trend), color},
			{" " + r.RatioString(), core.ColorDefault},
		}},
		{margin: 1, segments: []barSegment{
			{KrillGlyph, core.ColorKrill},
			{fmt.Sprintf("%d ", r.Collected), core.ColorDefault},
			{string(HarpoonChar), core.ColorBad},
			{fmt.Sprintf("%d ", r.Hits), core.ColorDefault},
			{string(trend), color},
			{r.RatioString(), core.ColorDefault},
		}},
	}
}

// drawScoreBar draws the first layout that fits the screen width, or the
// most compact one when none does.
func drawScoreBar(dst *core.Screen, r Report) {
	layouts := scoreBarLayouts(r)
	layout := layouts[len(layouts)-1]
	for _, l := range layouts {
		if l.width() <= dst.Width() {
			layout = l
			break
		}
	}

	x := layout.margin
	for _, s := range layout.segments {
		dst.DrawTextColor(x, scoreRow, s.text, s.color)
		x += utf8.RuneCountInString(s.text)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor((w-len(title))/2, boxY+1, title, core.ColorFrame)
	dst.DrawTextCentered(boxY+3, subtitle)
}

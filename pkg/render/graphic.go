package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/kk8888888/Generator-Comic/pkg/domain"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// キャンバス寸法なのだ。単独パネルは600px四方、ページはセル560px+余白40pxで組むのだ。
const (
	panelSize  = 600
	pageCell   = 560
	pageMargin = 40
	titleStrip = 56

	borderWidth = 4
	boxBorder   = 3
	boxPadding  = 16
	lineSpacing = 8
)

var (
	inkColor    = color.RGBA{15, 15, 15, 255}
	paperColor  = color.RGBA{250, 250, 250, 255}
	frameColor  = color.RGBA{0, 0, 0, 255}
	boxColor    = color.RGBA{255, 255, 255, 255}
	markerColor = color.RGBA{40, 40, 40, 255}
)

// GraphicRenderer はパネルをビットマップとして描画するレンダラです。
// 背景の塗り、台詞ボックス、話者付きテキスト、スタイルタグのマーカーを描き、
// PNG にエンコードして返します。
type GraphicRenderer struct {
	title     string
	bodyFace  font.Face
	titleFace font.Face
}

// NewGraphicRenderer は GraphicRenderer を生成します。
// face が nil の場合は組み込みフォントへ縮退します。
func NewGraphicRenderer(title string, bodyFace, titleFace font.Face) *GraphicRenderer {
	if bodyFace == nil {
		bodyFace = DefaultFace()
	}
	if titleFace == nil {
		titleFace = bodyFace
	}
	return &GraphicRenderer{title: title, bodyFace: bodyFace, titleFace: titleFace}
}

// Ext は ".png" を返します。
func (g *GraphicRenderer) Ext() string { return ".png" }

// RenderPanel は1コマを600x600のPNGとして描画します。
func (g *GraphicRenderer) RenderPanel(panel domain.Panel) (Artifact, error) {
	img := image.NewRGBA(image.Rect(0, 0, panelSize, panelSize))
	g.drawPanel(img, img.Bounds(), panel, g.headerFor(panel.Line.Index+1))
	return g.encode(img)
}

// RenderPage はグリッド1ページ分をまとめて1枚のPNGとして描画します。
func (g *GraphicRenderer) RenderPage(page domain.Page) (Artifact, error) {
	top := pageMargin
	if g.title != "" {
		top += titleStrip
	}
	width := pageMargin + page.Cols*(pageCell+pageMargin)
	height := top + page.Rows*(pageCell+pageMargin)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), paperColor)

	if g.title != "" {
		g.drawString(img, g.titleFace, g.headerFor(page.Number), pageMargin, pageMargin+ascent(g.titleFace), inkColor)
	}

	for _, panel := range page.Panels {
		x := pageMargin + panel.Col*(pageCell+pageMargin)
		y := top + panel.Row*(pageCell+pageMargin)
		cell := image.Rect(x, y, x+pageCell, y+pageCell)
		g.drawPanel(img, cell, panel, "")
	}

	return g.encode(img)
}

// drawPanel は1コマ分の装飾一式を rect の中に描くのだ。
func (g *GraphicRenderer) drawPanel(img *image.RGBA, rect image.Rectangle, panel domain.Panel, header string) {
	// 背景と枠線
	fillRect(img, rect, panel.Background.RGBA())
	strokeRect(img, rect, borderWidth, frameColor)

	// スタイルタグのマーカー（左上の小さな黒帯）
	tag := string(panel.Line.Style)
	tagW := measure(g.bodyFace, tag) + boxPadding
	marker := image.Rect(rect.Min.X+boxPadding, rect.Min.Y+boxPadding,
		rect.Min.X+boxPadding+tagW, rect.Min.Y+boxPadding+ascent(g.bodyFace)+12)
	fillRect(img, marker, markerColor)
	g.drawString(img, g.bodyFace, tag, marker.Min.X+boxPadding/2, marker.Min.Y+6+ascent(g.bodyFace), boxColor)

	// パネル見出し（単独パネルモードのみ）
	if header != "" {
		g.drawString(img, g.titleFace, header, marker.Max.X+boxPadding,
			rect.Min.Y+boxPadding+ascent(g.titleFace), inkColor)
	}

	// 台詞ボックス: パネル下半分の白い矩形なのだ
	boxTop := rect.Min.Y + rect.Dy()*52/100
	box := image.Rect(rect.Min.X+20, boxTop, rect.Max.X-20, rect.Max.Y-20)
	fillRect(img, box, boxColor)
	strokeRect(img, box, boxBorder, frameColor)

	// 話者ラベル + 訳文を折り返して流し込むのだ
	maxWidth := box.Dx() - 2*boxPadding
	lines := []string{panel.Line.Speaker + "："}
	lines = append(lines, g.wrap(panel.Line.TranslatedText, maxWidth)...)

	lineHeight := g.bodyFace.Metrics().Height.Ceil() + lineSpacing
	y := box.Min.Y + boxPadding + ascent(g.bodyFace)
	for _, line := range lines {
		if y > box.Max.Y-boxPadding {
			break // ボックスに収まらない分は切り詰めるのだ
		}
		g.drawString(img, g.bodyFace, line, box.Min.X+boxPadding, y, inkColor)
		y += lineHeight
	}
}

// headerFor はタイトルと幕番号からパネル/ページの見出しを作るのだ。
func (g *GraphicRenderer) headerFor(n int) string {
	if g.title == "" {
		return ""
	}
	return fmt.Sprintf("%s · 第%d幕", g.title, n)
}

// wrap は訳文を1文字単位で測りながら最大幅に収まる行へ折り返すのだ。
// 中国語は単語境界の空白を持たないので、文字単位で切るのが正解なのだ。
func (g *GraphicRenderer) wrap(text string, maxWidth int) []string {
	var lines []string
	var current string
	for _, r := range text {
		candidate := current + string(r)
		if measure(g.bodyFace, candidate) > maxWidth && current != "" {
			lines = append(lines, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (g *GraphicRenderer) drawString(img *image.RGBA, face font.Face, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (g *GraphicRenderer) encode(img image.Image) (Artifact, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Artifact{}, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return Artifact{Data: buf.Bytes(), MimeType: "image/png"}, nil
}

func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect は塗りつぶし矩形4本で枠線を描くのだ。
func strokeRect(img *image.RGBA, rect image.Rectangle, width int, c color.Color) {
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width), c)
	fillRect(img, image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y), c)
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y), c)
	fillRect(img, image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

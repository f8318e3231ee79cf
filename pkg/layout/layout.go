// Package layout は演出行を固定サイズのパネルグリッドへ配置します。
// 配置は行優先（row-major）で、背景色は文のインデックスから決定論的に選ばれます。
package layout

import "github.com/kk8888888/Generator-Comic/pkg/domain"

// Engine はグリッド寸法と背景色パレットを保持するレイアウトエンジンです。
// パレットはプロセス起動時に構築される不変データとして渡されます。
type Engine struct {
	rows    int
	cols    int
	palette []domain.PanelColor
}

// NewEngine はレイアウトエンジンを生成します。
// 不正な寸法は 1 に切り上げ、空パレットはデフォルトで補います。
func NewEngine(rows, cols int, palette []domain.PanelColor) *Engine {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if len(palette) == 0 {
		palette = domain.DefaultColorPalette
	}
	return &Engine{rows: rows, cols: cols, palette: palette}
}

// Paginate は演出行をページ列へ行優先で詰めていきます。
// グリッド容量を超えた行は黙って捨てずに次のページへ繰り越すのだ。
// 空入力からは空のページ列が返ります。
func (e *Engine) Paginate(lines []domain.StyledLine) []domain.Page {
	capacity := e.rows * e.cols
	var pages []domain.Page

	for start := 0; start < len(lines); start += capacity {
		end := min(start+capacity, len(lines))

		page := domain.Page{
			Number: len(pages) + 1,
			Rows:   e.rows,
			Cols:   e.cols,
			Panels: make([]domain.Panel, 0, end-start),
		}
		for offset, line := range lines[start:end] {
			page.Panels = append(page.Panels, e.panelFor(line, offset))
		}
		pages = append(pages, page)
	}

	return pages
}

// PerPanel は「1行 = 1ファイル」モード用の縮退レイアウトです。
// グリッドは 1x1 とみなし、すべての演出行がそれぞれ独立したパネルになります。
func (e *Engine) PerPanel(lines []domain.StyledLine) []domain.Panel {
	panels := make([]domain.Panel, 0, len(lines))
	for _, line := range lines {
		panels = append(panels, domain.Panel{
			Row:        0,
			Col:        0,
			Background: domain.ColorAt(e.palette, line.Index),
			Line:       line,
		})
	}
	return panels
}

// panelFor はページ内オフセットからセル座標を割り出してパネルを作るのだ。
// 背景色はページ内の位置ではなく行の通しインデックスに紐づくので、
// 同じ文は実行をまたいでも必ず同じ色になるのだ。
func (e *Engine) panelFor(line domain.StyledLine, offset int) domain.Panel {
	return domain.Panel{
		Row:        offset / e.cols,
		Col:        offset % e.cols,
		Background: domain.ColorAt(e.palette, line.Index),
		Line:       line,
	}
}

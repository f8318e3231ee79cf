package domain

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestColorAt_IsDeterministicAndPeriodic(t *testing.T) {
	t.Run("同じインデックスは常に同じ色なのだ", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			if ColorAt(DefaultColorPalette, i) != ColorAt(DefaultColorPalette, i) {
				t.Fatalf("index %d の色が揺れているのだ", i)
			}
		}
	})

	t.Run("パレット長の周期で巡回するのだ", func(t *testing.T) {
		size := len(DefaultColorPalette)
		for i := 0; i < size; i++ {
			if ColorAt(DefaultColorPalette, i) != ColorAt(DefaultColorPalette, i+size) {
				t.Errorf("index %d と %d は同じ色のはずなのだ", i, i+size)
			}
		}
	})

	t.Run("空パレットはデフォルトで補われるのだ", func(t *testing.T) {
		if ColorAt(nil, 0) != DefaultColorPalette[0] {
			t.Error("デフォルトパレットへの縮退が効いていないのだ")
		}
	})
}

func TestPanelColor_RGBA(t *testing.T) {
	c := PanelColor{Name: "珊瑚红", R: 247, G: 106, B: 108}
	want := color.RGBA{R: 247, G: 106, B: 108, A: 0xff}
	if c.RGBA() != want {
		t.Errorf("RGBA変換が違うのだ: %+v", c.RGBA())
	}
}

func TestStyledLine_JSON(t *testing.T) {
	t.Run("StyledLine構造体が正しくJSON変換できるのだ", func(t *testing.T) {
		line := StyledLine{
			Index:          2,
			OriginalText:   "Nobita is confused.",
			TranslatedText: "（大雄很困惑）",
			Style:          StyleNarration,
			Speaker:        "旁白",
		}

		data, err := json.Marshal(line)
		if err != nil {
			t.Fatalf("Marshal失敗なのだ: %v", err)
		}

		var decoded StyledLine
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal失敗なのだ: %v", err)
		}

		if decoded != line {
			t.Errorf("変換前後でデータが一致しないのだ。期待: %+v, 実際: %+v", line, decoded)
		}
	})
}

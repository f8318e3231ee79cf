package domain

// Story は変換対象となる入力の物語全体を表します。
// 読み込み後に書き換えられることはありません。
type Story struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// StyledLine は翻訳済みの一文に演出スタイルと話者を付与した「演出行」です。
type StyledLine struct {
	Index          int      `json:"index"`
	OriginalText   string   `json:"original_text"`
	TranslatedText string   `json:"translated_text"`
	Style          StyleTag `json:"style"`
	Speaker        string   `json:"speaker"`
}

// Panel は漫画ページの1コマを表します。1コマにつき演出行は常に1つです。
type Panel struct {
	Row        int        `json:"row"`
	Col        int        `json:"col"`
	Background PanelColor `json:"background"`
	Line       StyledLine `json:"line"`
}

// Page は複数のパネルをグリッド状に並べた物理的な1枚を表します。
type Page struct {
	Number int     `json:"number"`
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Panels []Panel `json:"panels"`
}

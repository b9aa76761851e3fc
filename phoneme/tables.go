package phoneme

// The four glyph tables below are indexed by field value; index 0 is
// always "absent" and renders as the empty string. Index order fixes
// each field's stable numeric encoding.

var initials = []string{
	"",
	"ㄅ", "ㄆ", "ㄇ", "ㄈ", "ㄉ", "ㄊ", "ㄋ", "ㄌ", "ㄍ", "ㄎ",
	"ㄏ", "ㄐ", "ㄑ", "ㄒ", "ㄓ", "ㄔ", "ㄕ", "ㄖ", "ㄗ", "ㄘ", "ㄙ",
}

var medials = []string{"", "ㄧ", "ㄨ", "ㄩ"}

var finals = []string{
	"",
	"ㄚ", "ㄛ", "ㄜ", "ㄝ", "ㄞ", "ㄟ", "ㄠ", "ㄡ", "ㄢ", "ㄣ", "ㄤ", "ㄥ", "ㄦ",
}

// tones[1] is intentionally empty: the first (level) tone carries no
// diacritic in Zhuyin.
var tones = []string{"", "", "ˊ", "ˇ", "ˋ", "˙"}

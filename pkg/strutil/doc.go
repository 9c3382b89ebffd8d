// Package strutil provides string search and extraction helpers that count
// positions in runes rather than bytes.
//
// Indexes returned and accepted by this package are rune offsets, so results
// are the same for ASCII, accented Latin or CJK text:
//
//	strutil.IndexOf("日本語テキスト", "テ", 0) // 3
//	strutil.Substring("日本語テキスト", 3, 2)  // "テキ"
//
// An empty search string never matches: StartsWith and EndsWith return false
// and IndexOf and LastIndexOf return NotFound.
//
// Out of range offsets are clamped to the string bounds instead of panicking.
package strutil

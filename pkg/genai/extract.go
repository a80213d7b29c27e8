package genai

import "github.com/tidwall/gjson"

// ExtractText navigates candidates[0].content.parts[0].text in the raw
// generateContent body. Any missing segment, non-array where an array is
// expected, empty array, or malformed JSON yields ok=false instead of an
// error; callers fall back to storing the raw body so nothing is lost.
func ExtractText(body string) (string, bool) {
	if !gjson.Valid(body) {
		return "", false
	}

	candidates := gjson.Get(body, "candidates")
	if !candidates.IsArray() {
		return "", false
	}
	arr := candidates.Array()
	if len(arr) == 0 {
		return "", false
	}

	parts := arr[0].Get("content.parts")
	if !parts.IsArray() {
		return "", false
	}
	partArr := parts.Array()
	if len(partArr) == 0 {
		return "", false
	}

	text := partArr[0].Get("text")
	if !text.Exists() {
		return "", false
	}
	return text.String(), true
}

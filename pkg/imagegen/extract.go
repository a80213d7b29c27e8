package imagegen

import "github.com/tidwall/gjson"

// The upstream has shipped at least three response shapes. Extraction is an
// ordered list of strategies; the first one that structurally matches the
// body decides the outcome, even when the matched field turns out empty.
// Structural presence wins over content validity, so a matched strategy is
// never skipped in favor of a later one.
type strategy func(root gjson.Result) (matched bool, url string, found bool)

var strategies = []strategy{
	fromResultsOrigin,
	fromImageURL,
	fromTopLevelURL,
}

// ExtractURL runs the fallback chain over the raw body. ok=false means no
// strategy produced a URL: either the body is not JSON, no known shape
// matched, or the matching shape was missing its URL field.
func ExtractURL(body string) (string, bool) {
	if !gjson.Valid(body) {
		return "", false
	}
	root := gjson.Parse(body)
	for _, s := range strategies {
		if matched, url, found := s(root); matched {
			return url, found
		}
	}
	return "", false
}

// {"code":200,"message":"Success","result":{"data":{"results":[{"origin":"URL"}]}}}
func fromResultsOrigin(root gjson.Result) (bool, string, bool) {
	results := root.Get("result.data.results")
	if !results.IsArray() {
		return false, "", false
	}
	arr := results.Array()
	if len(arr) == 0 {
		return false, "", false
	}
	origin := arr[0].Get("origin")
	if !origin.Exists() {
		// The new shape matched but carries no origin; do not fall back to
		// the legacy fields, they belong to a different response family.
		return true, "", false
	}
	return true, origin.String(), true
}

func fromImageURL(root gjson.Result) (bool, string, bool) {
	v := root.Get("image_url")
	if !v.Exists() {
		return false, "", false
	}
	return true, v.String(), true
}

func fromTopLevelURL(root gjson.Result) (bool, string, bool) {
	v := root.Get("url")
	if !v.Exists() {
		return false, "", false
	}
	return true, v.String(), true
}

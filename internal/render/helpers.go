package render

import (
	"encoding/json"
	"html/template"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"pdfservice/internal/utils"
)

// Formatting helpers available inside document templates. They are pure
// functions bound at renderer construction, never registered globally.
func helperFuncs() template.FuncMap {
	return template.FuncMap{
		"formatINR":          formatINR,
		"formatINRPlain":     formatINR,
		"formatDate":         utils.FormatLongDate,
		"eq":                 func(a, b any) bool { return a == b },
		"gt":                 gtHelper,
		"add":                addHelper,
		"multiply":           multiplyHelper,
		"formatBrandTag":     formatBrandTag,
		"dataImage":          dataImage,
		"stripHtml":          stripHTML,
		"decodeHtmlEntities": decodeEntities,
		"isArray":            isArray,
		"jsonStringify":      jsonStringify,
	}
}

func formatINR(v any) string {
	return utils.FormatINR(toFloat(v))
}

func gtHelper(a, b any) bool {
	return toFloat(a) > toFloat(b)
}

func addHelper(a, b any) float64 {
	return toFloat(a) + toFloat(b)
}

func multiplyHelper(a, b any) float64 {
	return math.Round(toFloat(a) * toFloat(b))
}

// formatBrandTag turns constants like "DUNIYA_DEKHO" into "Duniya Dekho".
func formatBrandTag(tag string) string {
	if tag == "" {
		return ""
	}
	parts := strings.Split(tag, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

// dataImage marks an inline base64 PNG as a safe image source. html/template
// would otherwise filter the data: scheme out of src attributes.
func dataImage(b64 string) template.URL {
	if b64 == "" {
		return ""
	}
	return template.URL("data:image/png;base64," + b64)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&middot;", "•",
	"&rsquo;", "'",
	"&lsquo;", "'",
	"&rdquo;", `"`,
	"&ldquo;", `"`,
	"&mdash;", "—",
	"&ndash;", "–",
	"&bull;", "•",
	"&hellip;", "…",
)

// stripHTML removes markup and decodes common entities for plain-text
// rendering of rich-text tour descriptions.
func stripHTML(text string) string {
	if text == "" {
		return ""
	}
	cleaned := tagPattern.ReplaceAllString(text, "")
	cleaned = entityReplacer.Replace(cleaned)
	return utils.NormalizeSpace(cleaned)
}

func decodeEntities(text string) string {
	if text == "" {
		return ""
	}
	return entityReplacer.Replace(text)
}

func isArray(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

var closingScript = regexp.MustCompile(`(?i)</script`)

// jsonStringify embeds a value as JSON for client-side hydration scripts.
// Closing-script sequences are escaped so the payload cannot terminate the
// surrounding <script> tag early.
func jsonStringify(v any) template.JS {
	if v == nil {
		return template.JS("null")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	safe := closingScript.ReplaceAllStringFunc(string(raw), func(m string) string {
		return strings.Replace(m, "/", `\/`, 1)
	})
	return template.JS(safe)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

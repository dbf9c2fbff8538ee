package mapper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reWord       = regexp.MustCompile(`@IEC61499_WORD`)
	reDword      = regexp.MustCompile(`@IEC61499_DWORD`)
	reLword      = regexp.MustCompile(`@IEC61499_LWORD`)
	reStartIndex = regexp.MustCompile(`@IEC61499_StartIndex\((-?\d+)\)`)
)

// iecAnnotations holds the IEC61499 markers a MSG trailing comment may
// carry (spec.md §4.D/§4.E).
type iecAnnotations struct {
	Word, Dword, Lword bool
	StartIndex         *int64
}

// parseIECAnnotations extracts the known @IEC61499_* tokens out of a MSG
// comment and returns the leftover text with them (and their separators)
// removed.
func parseIECAnnotations(comment *string) (iecAnnotations, string) {
	var ann iecAnnotations
	if comment == nil {
		return ann, ""
	}
	text := *comment
	if reDword.MatchString(text) {
		ann.Dword = true
		text = reDword.ReplaceAllString(text, "")
	}
	if reLword.MatchString(text) {
		ann.Lword = true
		text = reLword.ReplaceAllString(text, "")
	}
	if reWord.MatchString(text) {
		ann.Word = true
		text = reWord.ReplaceAllString(text, "")
	}
	if m := reStartIndex.FindStringSubmatch(text); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err == nil {
			ann.StartIndex = &n
		}
		text = reStartIndex.ReplaceAllString(text, "")
	}
	return ann, cleanupAnnotationText(text)
}

func cleanupAnnotationText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, ", .")
	return strings.TrimSpace(text)
}

// formatIECAnnotations renders the leading annotation prefix spec.md
// §4.E's comment synthesis rule describes, then joins it with the
// preserved DTP comment text.
func formatIECAnnotations(ann iecAnnotations, dtpComment *string) *string {
	var parts []string
	if ann.Word {
		parts = append(parts, "@IEC61499_WORD")
	}
	if ann.Dword {
		parts = append(parts, "@IEC61499_DWORD")
	}
	if ann.Lword {
		parts = append(parts, "@IEC61499_LWORD")
	}
	if ann.StartIndex != nil {
		parts = append(parts, fmt.Sprintf("@IEC61499_StartIndex(%d)", *ann.StartIndex))
	}
	prefix := strings.Join(parts, ", ")

	base := ""
	if dtpComment != nil {
		base = *dtpComment
	}

	switch {
	case prefix == "" && base == "":
		return nil
	case prefix == "":
		return &base
	case base == "":
		return &prefix
	default:
		s := prefix + ". " + base
		return &s
	}
}

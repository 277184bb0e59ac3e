package reconcile

import (
	"regexp"
	"strings"
)

var (
	resumeExtRe = regexp.MustCompile(`(?i)\.(pdf|docx?)$`)

	// Filename tokens that are document noise rather than name material.
	// Matched as whole words, case-insensitively.
	noiseWordRe = regexp.MustCompile(`(?i)\b(resume|cv|curriculum|vitae|qa|qe|engineer|developer|manager|analyst|tester|consultant|updated|latest|new|final|v1|v2|v3)\b`)

	digitRe      = regexp.MustCompile(`[0-9]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractNameFromFilename derives a display name for a candidate from the
// resume's original filename. A filename with no recognizable name tokens
// yields an empty string, which downstream means "no match possible".
func ExtractNameFromFilename(filename string) string {
	s := resumeExtRe.ReplaceAllString(filename, "")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = noiseWordRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = digitRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		tokens[i] = titleCase(tok)
	}
	return strings.Join(tokens, " ")
}

// titleCase uppercases the first rune of a token and lowercases the rest.
func titleCase(tok string) string {
	runes := []rune(strings.ToLower(tok))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

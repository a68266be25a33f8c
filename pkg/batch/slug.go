package batch

import (
	"regexp"
	"strings"
)

// Token maps used to build short, predictable output folder names from the
// free-text spreadsheet cells.
//
//nolint:gochecknoglobals // Fixed vocabulary tables
var (
	roleTokenMap = map[string]string{
		"developer":   "dev",
		"development": "dev",
		"engineer":    "eng",
		"engineering": "eng",
		"frontend":    "fe",
		"backend":     "be",
		"fullstack":   "fullstack",
		"mobile":      "mobile",
		"ios":         "ios",
		"android":     "android",
		"aos":         "aos",
		"data":        "data",
		"product":     "product",
		"qa":          "qa",
	}

	levelAliasMap = map[string]string{
		"junior":           "jr",
		"junior level":     "jr",
		"entry":            "jr",
		"entry level":      "jr",
		"associate":        "assoc",
		"intern":           "intern",
		"mid":              "mid",
		"mid level":        "mid",
		"midlevel":         "mid",
		"mid senior":       "mid_senior",
		"mid senior level": "mid_senior",
		"senior":           "sr",
		"senior level":     "sr",
		"staff":            "staff",
		"lead":             "lead",
		"principal":        "principal",
		"director":         "director",
	}

	languageCodeMap = map[string]string{
		"korean":     "ko",
		"korea":      "ko",
		"english":    "en",
		"eng":        "en",
		"japanese":   "ja",
		"japan":      "ja",
		"chinese":    "zh",
		"mandarin":   "zh",
		"spanish":    "es",
		"french":     "fr",
		"german":     "de",
		"vietnamese": "vi",
		"thai":       "th",
		"indonesian": "id",
		"portuguese": "pt",
	}

	tokenSplitPattern = regexp.MustCompile(`[^0-9A-Za-z]+`)
)

func tokenize(value string) (tokens []string) {
	for _, token := range tokenSplitPattern.Split(strings.ToLower(value), -1) {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func normalizeTokens(tokens []string, replacements map[string]string) (value string) {
	mapped := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if replacement, ok := replacements[token]; ok {
			token = replacement
		}
		mapped = append(mapped, token)
	}

	value = strings.Trim(strings.Join(mapped, "_"), "_")
	return value
}

func jobRoleSlug(jobRole, team string) (slug string) {
	slug = normalizeTokens(tokenize(jobRole), roleTokenMap)
	if slug != "" {
		return slug
	}

	slug = normalizeTokens(tokenize(team), roleTokenMap)
	if slug == "" {
		slug = "role"
	}
	return slug
}

func levelSlug(level string) (slug string) {
	if level == "" {
		slug = "level"
		return slug
	}

	normalized := strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(level), "-", " ")), " ")
	if alias, ok := levelAliasMap[normalized]; ok {
		slug = alias
		return slug
	}

	slug = normalizeTokens(tokenize(level), nil)
	if slug == "" {
		slug = "level"
	}
	return slug
}

func languageSlug(language string) (slug string) {
	if language == "" {
		slug = "lang"
		return slug
	}

	key := strings.Join(strings.Fields(strings.ToLower(language)), " ")
	if code, ok := languageCodeMap[key]; ok {
		slug = code
		return slug
	}

	key = strings.Trim(strings.ReplaceAll(key, " ", "_"), "_")
	if code, ok := languageCodeMap[key]; ok {
		slug = code
		return slug
	}

	if len(key) >= 2 {
		slug = key[:2]
		return slug
	}

	slug = key
	if slug == "" {
		slug = "lang"
	}
	return slug
}

// ComposeOutputFolder derives the per-row output directory name, e.g.
// "ios_dev_sr_ko" for an iOS Developer / Senior / Korean row.
func ComposeOutputFolder(row Row) (folder string) {
	parts := make([]string, 0, 3)
	for _, part := range []string{
		jobRoleSlug(row.JobRole, row.Team),
		levelSlug(row.JobLevel),
		languageSlug(row.Language),
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	folder = strings.Join(parts, "_")
	if folder == "" {
		folder = "assignment"
	}
	return folder
}

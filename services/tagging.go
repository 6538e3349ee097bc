package services

import (
	"bytes"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// CategoryGeneral is the fallback when no category keyword matches.
const CategoryGeneral = "general"

// keywordEntry maps filename keyword variants (English/Korean) to one tag.
type keywordEntry struct {
	variants []string
	tag      string
}

// keywordTable covers five families: location, activity, content, time,
// equipment. Matching is a case-folded substring scan over the whole table;
// every hit contributes its tag.
var keywordTable = []keywordEntry{
	// location
	{[]string{"whistler", "휘슬러"}, "휘슬러"},
	{[]string{"village", "빌리지"}, "휘슬러빌리지"},
	{[]string{"mountain", "마운틴"}, "마운틴"},
	{[]string{"park", "파크"}, "바이크파크"},
	{[]string{"vancouver", "밴쿠버"}, "밴쿠버"},
	{[]string{"lake", "호수"}, "호수"},
	// activity
	{[]string{"biking", "bike", "바이크", "바이킹"}, "바이킹"},
	{[]string{"downhill", "다운힐"}, "다운힐"},
	{[]string{"riding", "ride", "라이딩"}, "라이딩"},
	{[]string{"hiking", "hike", "하이킹"}, "하이킹"},
	{[]string{"gondola", "곤돌라"}, "곤돌라"},
	// content
	{[]string{"view", "전경"}, "전경"},
	{[]string{"landscape", "scenery", "풍경"}, "풍경"},
	{[]string{"food", "meal", "음식"}, "음식"},
	{[]string{"selfie", "셀카"}, "셀카"},
	{[]string{"tour", "관광"}, "관광"},
	// time
	{[]string{"sunrise", "일출"}, "일출"},
	{[]string{"sunset", "일몰"}, "일몰"},
	{[]string{"night", "야경"}, "야경"},
	{[]string{"morning", "아침"}, "아침"},
	// equipment
	{[]string{"helmet", "헬멧"}, "헬멧"},
	{[]string{"gopro", "고프로"}, "고프로"},
	{[]string{"gear", "장비"}, "장비"},
}

type categoryRule struct {
	variants []string
	category string
}

// categoryRules is a priority cascade: the first rule with any matching
// variant wins. The order is fixed and load-bearing.
var categoryRules = []categoryRule{
	{[]string{"mountain", "마운틴", "view", "전경", "landscape", "scenery", "풍경", "lake", "호수"}, "landscape"},
	{[]string{"bike", "바이크", "downhill", "다운힐", "action", "액션", "riding"}, "action"},
	{[]string{"selfie", "셀카", "portrait", "인물"}, "portrait"},
	{[]string{"food", "meal", "음식", "restaurant", "식당"}, "food"},
	{[]string{"hotel", "호텔", "lodge", "숙소"}, "accommodation"},
}

// defaultTags is substituted when no keyword matches at all.
var defaultTags = []string{"여행", "캐나다", "추억"}

// AnalyzeFilename derives a deduplicated tag set and a category from the
// original filename. Pure and total: depends only on the case-folded input
// string, never fails, never returns an empty tag set.
func AnalyzeFilename(name string) ([]string, string) {
	lower := strings.ToLower(name)

	var tags []string
	seen := make(map[string]bool)
	for _, entry := range keywordTable {
		for _, v := range entry.variants {
			if strings.Contains(lower, v) {
				if !seen[entry.tag] {
					seen[entry.tag] = true
					tags = append(tags, entry.tag)
				}
				break
			}
		}
	}

	category := CategoryGeneral
	for _, rule := range categoryRules {
		if matchesAny(lower, rule.variants) {
			category = rule.category
			break
		}
	}

	if len(tags) == 0 {
		tags = append(tags, defaultTags...)
	}

	return tags, category
}

func matchesAny(s string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// Dimensions reads the pixel size from decoded image bytes. A failed decode
// is not an error, the dimensions are simply unknown.
func Dimensions(data []byte) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}

package service

import (
	"time"

	"golang.org/x/text/language"
)

// dateConvention is how a locale writes a numeric date and a clock time.
// Money is formatted from CLDR data by the currency package; dates are not
// covered by any library in use, so the short numeric pattern per locale is
// kept here.
type dateConvention struct {
	layout string // time layout of the numeric date
	hour12 bool
}

// isoDate is used for well-formed locales with no known pattern.
var isoDate = dateConvention{layout: "2006-01-02"}

var dateConventions = []struct {
	tag  language.Tag
	conv dateConvention
}{
	{language.MustParse("en-US"), dateConvention{"1/2/2006", true}},
	{language.MustParse("en-GB"), dateConvention{"02/01/2006", false}},
	{language.MustParse("en-IN"), dateConvention{"2/1/2006", true}},
	{language.MustParse("en-CA"), dateConvention{"2006-01-02", true}},
	{language.MustParse("pt-PT"), dateConvention{"02/01/2006", false}},
	{language.MustParse("pt-BR"), dateConvention{"02/01/2006", false}},
	{language.MustParse("de-DE"), dateConvention{"2.1.2006", false}},
	{language.MustParse("fr-FR"), dateConvention{"02/01/2006", false}},
	{language.MustParse("fr-CA"), dateConvention{"2006-01-02", false}},
	{language.MustParse("es-ES"), dateConvention{"2/1/2006", false}},
	{language.MustParse("it-IT"), dateConvention{"2/1/2006", false}},
	{language.MustParse("nl-NL"), dateConvention{"2-1-2006", false}},
	{language.MustParse("da-DK"), dateConvention{"2.1.2006", false}},
	{language.MustParse("nb-NO"), dateConvention{"2.1.2006", false}},
	{language.MustParse("fi-FI"), dateConvention{"2.1.2006", false}},
	{language.MustParse("sv-SE"), dateConvention{"2006-01-02", false}},
	{language.MustParse("pl-PL"), dateConvention{"02.01.2006", false}},
	{language.MustParse("cs-CZ"), dateConvention{"2. 1. 2006", false}},
	{language.MustParse("hu-HU"), dateConvention{"2006. 01. 02.", false}},
	{language.MustParse("ru-RU"), dateConvention{"02.01.2006", false}},
	{language.MustParse("uk-UA"), dateConvention{"02.01.2006", false}},
	{language.MustParse("tr-TR"), dateConvention{"02.01.2006", false}},
	{language.MustParse("el-GR"), dateConvention{"2/1/2006", true}},
	{language.MustParse("ja-JP"), dateConvention{"2006/1/2", false}},
	{language.MustParse("zh-CN"), dateConvention{"2006/1/2", false}},
	{language.MustParse("zh-TW"), dateConvention{"2006/1/2", true}},
	{language.MustParse("ko-KR"), dateConvention{"2006. 1. 2.", true}},
	{language.MustParse("id-ID"), dateConvention{"2/1/2006", false}},
	{language.MustParse("vi-VN"), dateConvention{"2/1/2006", false}},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateConventions))
	for i, c := range dateConventions {
		tags[i] = c.tag
	}
	return language.NewMatcher(tags)
}()

// parseLocale returns the tag for locale. ok is false for a malformed tag.
func parseLocale(locale string) (language.Tag, bool) {
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

// lookupDateConvention resolves tag to the closest known pattern, or to ISO
// 8601 when nothing in the table is a reasonable match.
func lookupDateConvention(tag language.Tag) dateConvention {
	_, idx, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		return isoDate
	}
	return dateConventions[idx].conv
}

func (c dateConvention) formatDate(t time.Time) string {
	return t.Format(c.layout)
}

func (c dateConvention) formatTime(t time.Time) string {
	if c.hour12 {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}

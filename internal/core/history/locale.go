package history

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_PT"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

const (
	isoDate  = "2006-01-02"
	isoClock = "15:04:05"
)

var (
	translators = []locales.Translator{
		en_US.New(),
		en_GB.New(),
		de.New(),
		fr.New(),
		ja.New(),
		es.New(),
		it.New(),
		nl.New(),
		pt.New(),
		pt_PT.New(),
		pl.New(),
		ru.New(),
		zh.New(),
		ko.New(),
		sv.New(),
		da.New(),
		fi.New(),
		nb.New(),
		cs.New(),
		tr.New(),
	}
	supported = tagsOf(translators)
	matcher   = language.NewMatcher(supported)
)

// tagsOf maps CLDR locale names ("en_US") to BCP 47 tags, index aligned
func tagsOf(ts []locales.Translator) []language.Tag {
	out := make([]language.Tag, len(ts))
	for i, t := range ts {
		out[i] = language.MustParse(strings.ReplaceAll(t.Locale(), "_", "-"))
	}
	return out
}

// MatchLocale picks the supported locale for an Accept-Language header.
// When nothing matches, fallback is matched instead; an unmatched or
// unparsable fallback yields language.Und, which formats dates as ISO.
func MatchLocale(acceptLanguage, fallback string) language.Tag {
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if _, i, conf := matcher.Match(tags...); conf != language.No {
				return supported[i]
			}
		}
	}
	if fallback == "" {
		return language.Und
	}
	tag, err := language.Parse(fallback)
	if err != nil {
		return language.Und
	}
	if _, i, conf := matcher.Match(tag); conf != language.No {
		return supported[i]
	}
	return language.Und
}

func translatorFor(tag language.Tag) locales.Translator {
	for i, s := range supported {
		if s == tag {
			return translators[i]
		}
	}
	return nil
}

// Labeler turns instants into day keys and locale labels in one location
type Labeler struct {
	loc *time.Location
	tag language.Tag
	tr  locales.Translator
}

// NewLabeler builds a labeler; a nil loc means UTC and an unsupported tag
// formats ISO
func NewLabeler(loc *time.Location, tag language.Tag) Labeler {
	if loc == nil {
		loc = time.UTC
	}
	return Labeler{loc: loc, tag: tag, tr: translatorFor(tag)}
}

// Location is where calendar days are computed
func (l Labeler) Location() *time.Location {
	if l.loc == nil {
		return time.UTC
	}
	return l.loc
}

// Locale is the BCP 47 tag labels are formatted for
func (l Labeler) Locale() language.Tag { return l.tag }

// Day is the ISO calendar date of t in the labeler's location
func (l Labeler) Day(t time.Time) string { return t.In(l.Location()).Format(isoDate) }

// Date is the CLDR medium date of t
func (l Labeler) Date(t time.Time) string {
	t = t.In(l.Location())
	if l.tr == nil {
		return t.Format(isoDate)
	}
	return l.tr.FmtDateMedium(t)
}

// Clock is the CLDR medium wall clock time of t
func (l Labeler) Clock(t time.Time) string {
	t = t.In(l.Location())
	if l.tr == nil {
		return t.Format(isoClock)
	}
	// en_US renders the midnight hour as 0
	if t.Hour() == 0 && l.tr.Locale() == "en_US" {
		return "12" + strings.TrimPrefix(l.tr.FmtTimeMedium(t), "0")
	}
	return l.tr.FmtTimeMedium(t)
}

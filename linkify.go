package mdwriter

import (
	"regexp"
	"strings"
)

type linkRule struct {
	re      *regexp.Regexp
	replace string
}

// Rules run in this order. ftp deliberately allows a narrower character set
// than http(s): no '&' and no ':'.
var linkRules = []linkRule{
	{re: regexp.MustCompile(`http://([a-zA-Z0-9/_\-.?=&:%]*)`), replace: "[${1}](${0})"},
	{re: regexp.MustCompile(`https://([a-zA-Z0-9/_\-.?=&:%]*)`), replace: "[${1}](${0})"},
	{re: regexp.MustCompile(`([\w\-.]+@[\w\-.]+\.[a-z][a-z]+)`), replace: "[${1}](mailto:${1})"},
	{re: regexp.MustCompile(`ftp://([a-zA-Z0-9/_\-.?=]*)`), replace: "[${1}](${0})"},
}

// linkMarkup matches link and image markup already present in the text.
var linkMarkup = regexp.MustCompile(`!?\[[^\]\n]*\]\([^)\s]*\)`)

// segment is a run of text; linked segments are never rewritten again.
type segment struct {
	text   string
	linked bool
}

// Linkify rewrites bare http, https and ftp URLs and email addresses in text
// into Markdown links. A URL becomes [rest](scheme://rest), with the scheme
// dropped from the label, and an email becomes [addr](mailto:addr).
//
// Existing link markup is left alone, and a link produced by one rule is not
// matched by a later one, so Linkify(Linkify(s)) == Linkify(s).
func Linkify(text string) string {
	if text == "" {
		return text
	}
	segs := protect(text)
	for _, rule := range linkRules {
		segs = rule.apply(segs)
	}
	if len(segs) == 1 {
		return segs[0].text
	}
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	for _, s := range segs {
		sb.WriteString(s.text)
	}
	return sb.String()
}

func protect(text string) []segment {
	locs := linkMarkup.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []segment{{text: text}}
	}
	segs := make([]segment, 0, len(locs)*2+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			segs = append(segs, segment{text: text[last:loc[0]]})
		}
		segs = append(segs, segment{text: text[loc[0]:loc[1]], linked: true})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, segment{text: text[last:]})
	}
	return segs
}

func (r linkRule) apply(segs []segment) []segment {
	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		if s.linked {
			out = append(out, s)
			continue
		}
		locs := r.re.FindAllStringSubmatchIndex(s.text, -1)
		if len(locs) == 0 {
			out = append(out, s)
			continue
		}
		last := 0
		for _, loc := range locs {
			if loc[0] > last {
				out = append(out, segment{text: s.text[last:loc[0]]})
			}
			link := r.re.ExpandString(nil, r.replace, s.text, loc)
			out = append(out, segment{text: string(link), linked: true})
			last = loc[1]
		}
		if last < len(s.text) {
			out = append(out, segment{text: s.text[last:]})
		}
	}
	return out
}

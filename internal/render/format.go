package render

import (
	"net/url"
	"strings"
	"time"

	"resume-builder/internal/model"

	"golang.org/x/net/publicsuffix"
)

// date inputs accepted from the form: month pickers, date pickers and
// full timestamps from older clients.
var dateLayouts = []string{"2006-01", "2006-01-02", time.RFC3339}

// FormatDate renders a stored date as "Mon YYYY". Empty input stays empty;
// input in no known layout is returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// ExperienceRange renders "<start> - <end>", with an empty end shown as
// the present label. A blank end counts as empty.
func ExperienceRange(e model.Experience, labels Labels) string {
	end := labels.Present
	if strings.TrimSpace(e.EndDate) != "" {
		end = FormatDate(e.EndDate)
	}
	return FormatDate(e.StartDate) + " - " + end
}

// EducationRange renders "<start> - <end>". Unlike ExperienceRange there is
// no fallback for an empty end date.
func EducationRange(e model.Education) string {
	return FormatDate(e.StartDate) + " - " + FormatDate(e.EndDate)
}

// SplitSkills splits the comma-delimited skills string into trimmed,
// non-empty tags.
func SplitSkills(skills string) []string {
	out := []string{}
	for _, part := range strings.Split(skills, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// websiteLink returns an href with a scheme and a short label (eTLD+1) for
// the link title.
func websiteLink(raw string) (href, label string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	href = raw
	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		href = "https://" + href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href, raw
	}
	host := parsed.Hostname()
	if host == "" {
		return href, raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return href, strings.TrimPrefix(etld, "www.")
	}
	return href, strings.TrimPrefix(host, "www.")
}

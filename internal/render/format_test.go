package render

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"2020-01":              "Jan 2020",
		"2019-09-15":           "Sep 2019",
		"2021-03-01T00:00:00Z": "Mar 2021",
		"  2018-12 ":           "Dec 2018",
		"spring 2020":          "spring 2020",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDate(in), "input %q", in)
	}
}

func TestExperienceRangeFallsBackToPresent(t *testing.T) {
	labels := DefaultLabels()

	open := model.Experience{StartDate: "2020-01"}
	assert.Equal(t, "Jan 2020 - Present", ExperienceRange(open, labels))

	closed := model.Experience{StartDate: "2020-01", EndDate: "2022-06"}
	assert.Equal(t, "Jan 2020 - Jun 2022", ExperienceRange(closed, labels))

	for _, end := range []string{" ", "\t", "  \n"} {
		blank := model.Experience{StartDate: "2020-01", EndDate: end}
		assert.Equal(t, "Jan 2020 - Present", ExperienceRange(blank, labels), "end %q", end)
	}
}

// Education deliberately has no "Present" fallback: an open range renders
// with nothing after the separator.
func TestEducationRangeHasNoFallback(t *testing.T) {
	open := model.Education{StartDate: "2016-09"}
	assert.Equal(t, "Sep 2016 - ", EducationRange(open))

	closed := model.Education{StartDate: "2016-09", EndDate: "2020-06"}
	assert.Equal(t, "Sep 2016 - Jun 2020", EducationRange(closed))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"JavaScript", "React", "Node.js"}, SplitSkills("JavaScript, React,  Node.js ,,"))
	assert.Equal(t, []string{}, SplitSkills(""))
	assert.Equal(t, []string{}, SplitSkills(" , ,"))
	assert.Equal(t, []string{"Go"}, SplitSkills("Go"))
}

func TestWebsiteLink(t *testing.T) {
	href, label := websiteLink("www.blog.example.co.uk/about")
	assert.Equal(t, "https://www.blog.example.co.uk/about", href)
	assert.Equal(t, "example.co.uk", label)

	href, label = websiteLink("http://jane.dev")
	assert.Equal(t, "http://jane.dev", href)
	assert.Equal(t, "jane.dev", label)

	href, label = websiteLink("  ")
	assert.Empty(t, href)
	assert.Empty(t, label)
}

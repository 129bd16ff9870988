package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsAreOrdered(t *testing.T) {
	var names []string
	for _, m := range migrations {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"create_users", "create_resumes", "add_resumes_template_check"}, names)
}

func TestTemplateCheckLookupIsScopedToResumes(t *testing.T) {
	assert.Contains(t, templateCheckExists, "conrelid = 'resumes'::regclass")
	assert.Contains(t, templateCheckExists, "conname = 'resumes_template_check'")
}

func TestResumesTableHasOneRowPerUser(t *testing.T) {
	assert.Contains(t, createResumes, "user_id")
	assert.Contains(t, createResumes, "UNIQUE")
}

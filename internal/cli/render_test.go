package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recruitify/internal/model"
	"github.com/idilsaglam/recruitify/internal/ui"
)

func init() {
	// plain output so assertions see the raw text
	ui.SetTheme("mono")
	ui.SetColorForcing(false, true)
}

func TestJobLabel(t *testing.T) {
	assert.Equal(t, "Engineer (Remote)", jobLabel("Engineer", "Remote"))
	assert.Equal(t, "Engineer", jobLabel("Engineer", ""))
}

func TestJobLinesOnePerJobInOrder(t *testing.T) {
	jobs := []model.Job{
		{ID: 1, Title: "Engineer", Location: "Remote"},
		{ID: 2, Title: "Frontend Developer", Location: "Lagos"},
		{ID: 3, Title: "Data Analyst Intern", Location: "Onsite"},
	}
	lines := jobLines(jobs)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Engineer (Remote)")
	assert.Contains(t, lines[0], "#1")
	assert.Contains(t, lines[1], "Frontend Developer (Lagos)")
	assert.Contains(t, lines[2], "Data Analyst Intern (Onsite)")
}

func TestJobLinesEmpty(t *testing.T) {
	lines := jobLines(nil)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "no open jobs")
}

func TestApplicationLabel(t *testing.T) {
	a := model.Application{
		Candidate: &model.Candidate{Name: "Ada Lovelace"},
		Job:       &model.Job{Title: "Engineer"},
	}
	assert.Equal(t, "Ada Lovelace applied for Engineer", applicationLabel(a))
}

func TestApplicationLabelMissingDescriptors(t *testing.T) {
	a := model.Application{Candidate: &model.Candidate{Name: "Ada Lovelace"}}
	assert.Equal(t, "Ada Lovelace applied for (removed job)", applicationLabel(a))

	b := model.Application{Job: &model.Job{Title: "Engineer"}}
	assert.Equal(t, "(unknown) applied for Engineer", applicationLabel(b))
}

func TestApplicationLinesOnePerRecord(t *testing.T) {
	apps := []model.Application{
		{Candidate: &model.Candidate{Name: "Ada Lovelace"}, Job: &model.Job{Title: "Engineer"}},
		{Candidate: &model.Candidate{Name: "Grace Hopper"}, Job: &model.Job{Title: "Frontend Developer"}},
	}
	lines := applicationLines(apps)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Ada Lovelace applied for Engineer")
	assert.Contains(t, lines[1], "Grace Hopper applied for Frontend Developer")
}

func TestCandidateLines(t *testing.T) {
	cands := []model.Candidate{
		{Name: "Ada Lovelace", Email: "ada@example.org"},
	}
	lines := candidateLines(cands)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Ada Lovelace")
	assert.Contains(t, lines[0], "<ada@example.org>")
}

package cli

import (
	"fmt"

	"github.com/idilsaglam/recruitify/internal/model"
	"github.com/idilsaglam/recruitify/internal/ui"
)

// -------------- rendering helpers --------------

// jobLines renders one "Title (Location)" row per job, in the order
// the server returned them.
func jobLines(jobs []model.Job) []string {
	if len(jobs) == 0 {
		return []string{ui.C(ui.Current().Muted, "no open jobs")}
	}
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		id := fmt.Sprintf("#%d", j.ID)
		title := j.Title
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		line := fmt.Sprintf("%s %s %s",
			ui.C(ui.Current().Muted, id),
			ui.C(ui.Current().Pending, ui.Current().Bullet),
			jobLabel(title, j.Location))
		out = append(out, line)
	}
	return out
}

// jobLabel is the canonical job row text: "Engineer (Remote)".
func jobLabel(title, location string) string {
	if location == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, location)
}

func jobDetailLines(j model.Job) []string {
	lines := []string{
		fmt.Sprintf("%s %s", ui.C(ui.Current().Title, j.Title), ui.C(ui.Current().Muted, fmt.Sprintf("#%d", j.ID))),
	}
	if j.Location != "" {
		lines = append(lines, ui.C(ui.Current().Accent, "Location: ")+j.Location)
	}
	if j.Description != "" {
		lines = append(lines, "", j.Description)
	}
	return lines
}

// applicationLines renders one "{name} applied for {title}" row per
// application, in server order.
func applicationLines(apps []model.Application) []string {
	if len(apps) == 0 {
		return []string{ui.C(ui.Current().Muted, "no applications yet")}
	}
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		out = append(out, fmt.Sprintf("%s %s",
			ui.C(ui.Current().Success, ui.Current().Bullet),
			applicationLabel(a)))
	}
	return out
}

// applicationLabel is the canonical application row text.
func applicationLabel(a model.Application) string {
	return fmt.Sprintf("%s applied for %s", a.CandidateName(), a.JobTitle())
}

func candidateLines(cands []model.Candidate) []string {
	if len(cands) == 0 {
		return []string{ui.C(ui.Current().Muted, "no candidates yet")}
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(ui.Current().Pending, ui.Current().Bullet),
			c.Name,
			ui.C(ui.Current().Muted, "<"+c.Email+">")))
	}
	return out
}

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/recruitify/internal/model"
)

// jobOption is one entry of the job select control: the label is the
// job title, the value its decimal id. Options are rebuilt wholesale
// from every jobs fetch, in server order.
type jobOption struct {
	Label string
	Value string
}

func optionsFor(jobs []model.Job) []jobOption {
	opts := make([]jobOption, 0, len(jobs))
	for _, j := range jobs {
		opts = append(opts, jobOption{Label: j.Title, Value: strconv.Itoa(j.ID)})
	}
	return opts
}

const (
	fieldName = iota
	fieldEmail
	fieldResume
	fieldCover
	fieldCount
)

// applyForm collects the five submitted fields: four text inputs plus
// the job select. Values pass through unvalidated; the server decides.
type applyForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newApplyForm() applyForm {
	var f applyForm
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		return ti
	}
	f.inputs[fieldName] = mk("Your name", 200)
	f.inputs[fieldEmail] = mk("you@example.org", 200)
	f.inputs[fieldResume] = mk("Resume text or link", 2000)
	f.inputs[fieldCover] = mk("Cover letter", 2000)
	f.inputs[fieldName].Focus()
	return f
}

// next moves focus forward and reports whether the form wrapped past
// the last field, which is the submit gesture.
func (f *applyForm) next() (submit bool) {
	f.inputs[f.focus].Blur()
	f.focus++
	if f.focus >= fieldCount {
		f.focus = 0
		f.inputs[f.focus].Focus()
		return true
	}
	f.inputs[f.focus].Focus()
	return false
}

func (f *applyForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus--
	if f.focus < 0 {
		f.focus = fieldCount - 1
	}
	f.inputs[f.focus].Focus()
}

func (f *applyForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *applyForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	f.inputs[fieldName].Focus()
}

// value assembles the POST /apply body from the entered fields and the
// selected job option.
func (f *applyForm) value(opt jobOption) model.ApplicationForm {
	jobID, _ := strconv.Atoi(opt.Value)
	return model.ApplicationForm{
		Name:        f.inputs[fieldName].Value(),
		Email:       f.inputs[fieldEmail].Value(),
		Resume:      f.inputs[fieldResume].Value(),
		JobID:       jobID,
		CoverLetter: f.inputs[fieldCover].Value(),
	}
}

func (f *applyForm) view(opt jobOption, haveJobs bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Apply"))
	b.WriteString("  ")
	if haveJobs {
		b.WriteString(mutedStyle.Render("job: "))
		b.WriteString(accentStyle.Render("◂ " + opt.Label + " ▸"))
	} else {
		b.WriteString(errorStyle.Render("no jobs to apply for"))
	}
	b.WriteString("\n")

	labels := [fieldCount]string{"Name", "Email", "Resume", "Cover letter"}
	for i := range f.inputs {
		lab := mutedStyle.Render(labels[i])
		if i == f.focus {
			lab = selectedStyle.Render(labels[i])
		}
		b.WriteString(lab + "\n" + f.inputs[i].View() + "\n")
	}
	b.WriteString(helpStyle.Render("enter next/submit · shift+tab back · ◂▸ pick job · esc cancel"))
	return b.String()
}

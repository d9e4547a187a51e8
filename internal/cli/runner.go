package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/idilsaglam/recruitify/internal/api"
	"github.com/idilsaglam/recruitify/internal/formfile"
	"github.com/idilsaglam/recruitify/internal/model"
	"github.com/idilsaglam/recruitify/internal/tui"
	"github.com/idilsaglam/recruitify/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	BaseURL string        // API endpoint, default api.DefaultBaseURL
	Timeout time.Duration // per-request timeout
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]
	client := api.New(opt.BaseURL, opt.Timeout)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "jobs":
		return doJobs(client)

	case "job":
		if len(a) != 1 {
			ui.Fail("usage: recruitify job <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("job: not a number: " + a[0])
			return 2
		}
		return doJob(client, id)

	case "post-job":
		return doPostJob(client, a)

	case "rm-job":
		if len(a) != 1 {
			ui.Fail("usage: recruitify rm-job <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm-job: not a number: " + a[0])
			return 2
		}
		return doRemoveJob(client, id)

	case "candidates":
		return doCandidates(client)

	case "applications":
		return doApplications(client)

	case "apply":
		return doApply(client, a)

	case "browse":
		if err := tui.Browse(client); err != nil {
			ui.Fail("browse: " + err.Error())
			return 1
		}
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`recruitify - a terminal client for the Recruitify job board

Usage:
  recruitify <subcommand> [args]

Subcommands:
  browse                       Interactive UI (jobs, applications, apply form)
  jobs                         List open jobs
  job <id>                     Show one job
  post-job -title T [flags]    Create a job posting
  rm-job <id>                  Delete a job posting
  candidates                   List candidates
  applications                 List submitted applications
  apply [flags]                Submit an application

Apply flags:
  -job <id> -name N -email E [-resume R] [-cover C]
  -f <file.json>               Read the form from a JSON file instead

Examples:
  recruitify jobs
  recruitify apply -job 1 -name "Ada Lovelace" -email ada@example.org
  recruitify apply -f application.json
`)
}

// -------------- subcommand impls ----------------

func doJobs(client *api.Client) int {
	jobs, err := client.ListJobs(context.Background())
	if err != nil {
		ui.Fail("jobs: " + err.Error())
		return 1
	}

	header := fmt.Sprintf("%s  %s %d",
		ui.C(ui.Current().Title, "Jobs"),
		ui.C(ui.Current().Accent, "open"), len(jobs),
	)
	lines := []string{header, ""}
	lines = append(lines, jobLines(jobs)...)
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: apply with `recruitify apply -job <id> ...`"))
	ui.Panel(lines)
	return 0
}

func doJob(client *api.Client, id int) int {
	job, err := client.GetJob(context.Background(), id)
	if err != nil {
		ui.Fail("job: " + err.Error())
		return 1
	}
	ui.Panel(jobDetailLines(*job))
	return 0
}

func doPostJob(client *api.Client, args []string) int {
	fs := flag.NewFlagSet("post-job", flag.ContinueOnError)
	title := fs.String("title", "", "job title (required by the server)")
	desc := fs.String("desc", "", "job description")
	loc := fs.String("location", "", "job location")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	job, err := client.CreateJob(context.Background(), model.Job{
		Title:       *title,
		Description: *desc,
		Location:    *loc,
	})
	if err != nil {
		ui.Fail("post-job: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("posted job #%d %s", job.ID, job.Title))
	return 0
}

func doRemoveJob(client *api.Client, id int) int {
	if err := client.DeleteJob(context.Background(), id); err != nil {
		ui.Fail("rm-job: " + err.Error())
		return 1
	}
	ui.OK("deleted")
	return 0
}

func doCandidates(client *api.Client) int {
	cands, err := client.ListCandidates(context.Background())
	if err != nil {
		ui.Fail("candidates: " + err.Error())
		return 1
	}
	header := fmt.Sprintf("%s  %s %d",
		ui.C(ui.Current().Title, "Candidates"),
		ui.C(ui.Current().Accent, "total"), len(cands),
	)
	lines := []string{header, ""}
	lines = append(lines, candidateLines(cands)...)
	ui.Panel(lines)
	return 0
}

func doApplications(client *api.Client) int {
	apps, err := client.ListApplications(context.Background())
	if err != nil {
		ui.Fail("applications: " + err.Error())
		return 1
	}
	header := fmt.Sprintf("%s  %s %d",
		ui.C(ui.Current().Title, "Applications"),
		ui.C(ui.Current().Accent, "total"), len(apps),
	)
	lines := []string{header, ""}
	lines = append(lines, applicationLines(apps)...)
	ui.Panel(lines)
	return 0
}

func doApply(client *api.Client, args []string) int {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	file := fs.String("f", "", "read the form from a JSON file")
	jobID := fs.Int("job", 0, "job id to apply for")
	name := fs.String("name", "", "candidate name")
	email := fs.String("email", "", "candidate email")
	resume := fs.String("resume", "", "resume text or link")
	cover := fs.String("cover", "", "cover letter")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var form model.ApplicationForm
	if *file != "" {
		var err error
		form, err = formfile.Load(*file)
		if err != nil {
			ui.Fail("apply: " + err.Error())
			return 1
		}
	} else {
		// Values go out as entered; the server validates.
		form = model.ApplicationForm{
			Name:        *name,
			Email:       *email,
			Resume:      *resume,
			JobID:       *jobID,
			CoverLetter: *cover,
		}
	}

	app, err := client.Apply(context.Background(), form)
	if err != nil {
		ui.Fail("Error: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("%s applied for %s", app.CandidateName(), app.JobTitle()))
	return 0
}

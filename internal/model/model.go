package model

// Job is a posted position as returned by the API.
type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Candidate is the person behind an application. The server is the
// authoritative store; the client only renders what it gets back.
type Candidate struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Resume    string `json:"resume,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Application is a candidate's submission against a job. The nested
// descriptors can be null when the server lost track of either side.
type Application struct {
	ID          int        `json:"id"`
	CoverLetter string     `json:"cover_letter,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	Job         *Job       `json:"job"`
	Candidate   *Candidate `json:"candidate"`
}

// ApplicationForm carries the five submitted fields of POST /apply.
// Values pass through as entered; the server does the validating.
type ApplicationForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Resume      string `json:"resume"`
	JobID       int    `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}

// CandidateName is a nil-safe accessor for rendering.
func (a Application) CandidateName() string {
	if a.Candidate == nil {
		return "(unknown)"
	}
	return a.Candidate.Name
}

// JobTitle is a nil-safe accessor for rendering.
func (a Application) JobTitle() string {
	if a.Job == nil {
		return "(removed job)"
	}
	return a.Job.Title
}

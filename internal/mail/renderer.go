// Package mail renders email jobs and delivers them over SMTP.
package mail

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"proapp/internal/i18n"
	"proapp/internal/queue"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	ErrUnknownJob = errors.New("unknown email job type")
	ErrMissingURL = errors.New("email job has no url")
)

// Message is one rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type jobTemplate struct {
	file    string
	subject string
}

var jobTemplates = map[string]jobTemplate{
	queue.JobVerifyAccount:  {file: "verify_account.html", subject: "mail.verify_subject"},
	queue.JobForgotPassword: {file: "forgot_password.html", subject: "mail.forgot_subject"},
	queue.JobAutoLogin:      {file: "auto_login.html", subject: "mail.autologin_subject"},
}

type view struct {
	Lang    string
	Subject string
	Name    string
	Email   string
	URL     string
}

type buttonView struct {
	URL   string
	Label string
}

var funcs = template.FuncMap{
	"t":  i18n.T,
	"tf": i18n.Tf,
	"button": func(url, label string) buttonView {
		return buttonView{URL: url, Label: label}
	},
}

// Renderer holds one parsed template set per job type.
type Renderer struct {
	sets map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	sets := make(map[string]*template.Template, len(jobTemplates))
	for jobType, jt := range jobTemplates {
		tmpl, err := template.New(jt.file).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+jt.file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", jt.file, err)
		}
		sets[jobType] = tmpl
	}
	return &Renderer{sets: sets}, nil
}

// Render builds the message for job in the job's language.
func (r *Renderer) Render(job queue.EmailJob) (Message, error) {
	jt, ok := jobTemplates[job.Type]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownJob, job.Type)
	}
	if job.Data["url"] == "" {
		return Message{}, ErrMissingURL
	}

	lang := i18n.Normalize(job.Lang)
	v := view{
		Lang:    lang,
		Subject: i18n.T(lang, jt.subject),
		Name:    job.Data["user_name"],
		Email:   job.Data["email"],
		URL:     job.Data["url"],
	}
	if v.Name == "" {
		v.Name = job.To
	}
	if v.Email == "" {
		v.Email = job.To
	}

	var buf bytes.Buffer
	if err := r.sets[job.Type].ExecuteTemplate(&buf, "layout", v); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", job.Type, err)
	}
	return Message{To: job.To, Subject: v.Subject, HTML: buf.String()}, nil
}

package user

import (
	"strings"

	"proapp/internal/dbmysql"
)

// ProfileInput carries the optional profile fields shared by create and update.
// A nil pointer means the field was not supplied.
type ProfileInput struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	BirthDate  *string `json:"birth_date,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Picture    *string `json:"picture,omitempty"`
	Company    *string `json:"company,omitempty"`
	Biography  *string `json:"biography,omitempty"`
}

// CreateInput is one candidate user for ReconcileCreate.
type CreateInput struct {
	Email         string   `json:"email"`
	Username      *string  `json:"username,omitempty"`
	Password      *string  `json:"password,omitempty"`
	MobilePhone   *string  `json:"mobile_phone,omitempty"`
	IsAllowNotify *bool    `json:"is_allow_notify,omitempty"`
	Language      *string  `json:"language,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	Settings      *string  `json:"settings,omitempty"`
	ProfileInput
}

// UpdateInput is a sparse patch: only non-nil fields are applied, so an
// explicit false or empty value differs from an omitted one.
type UpdateInput struct {
	Email         *string  `json:"email,omitempty"`
	Username      *string  `json:"username,omitempty"`
	MobilePhone   *string  `json:"mobile_phone,omitempty"`
	IsAllowNotify *bool    `json:"is_allow_notify,omitempty"`
	IsVerified    *bool    `json:"is_verified,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	IsApproved    *bool    `json:"is_approved,omitempty"`
	Language      *string  `json:"language,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	Settings      *string  `json:"settings,omitempty"`
	ProfileInput
}

// nonEmpty returns the trimmed value when p is set to something non-blank.
func nonEmpty(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	return v, v != ""
}

// nullable maps "" to nil so clearing a column stores NULL.
func nullable(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	v := *p
	return &v
}

func parseBirthDate(p *string) (*dbmysql.Date, error) {
	v, ok := nonEmpty(p)
	if !ok {
		return nil, nil
	}
	d, err := dbmysql.ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// applyCreate writes every supplied profile field onto p. name falls back to
// the resolved username.
func (in ProfileInput) applyCreate(p *dbmysql.Profile, username string, birth *dbmysql.Date) {
	if name, ok := nonEmpty(in.Name); ok {
		p.Name = &name
	} else if username != "" {
		p.Name = &username
	}
	setIfPresent(&p.Address, in.Address)
	setIfPresent(&p.City, in.City)
	setIfPresent(&p.State, in.State)
	setIfPresent(&p.Country, in.Country)
	setIfPresent(&p.PostalCode, in.PostalCode)
	setIfPresent(&p.JobTitle, in.JobTitle)
	setIfPresent(&p.Gender, in.Gender)
	setIfPresent(&p.Picture, in.Picture)
	setIfPresent(&p.Company, in.Company)
	setIfPresent(&p.Biography, in.Biography)
	if birth != nil {
		p.BirthDate = birth
	}
}

// applyUpdate only touches present fields. Job title and biography may be
// cleared with an empty string; the other text fields ignore blanks.
func (in ProfileInput) applyUpdate(p *dbmysql.Profile, birth *dbmysql.Date) {
	setIfNonEmpty(&p.Name, in.Name)
	setIfNonEmpty(&p.Address, in.Address)
	setIfNonEmpty(&p.City, in.City)
	setIfNonEmpty(&p.State, in.State)
	setIfNonEmpty(&p.Country, in.Country)
	setIfNonEmpty(&p.PostalCode, in.PostalCode)
	setIfNonEmpty(&p.Company, in.Company)
	setIfNonEmpty(&p.Gender, in.Gender)
	setIfNonEmpty(&p.Picture, in.Picture)
	setIfPresent(&p.JobTitle, in.JobTitle)
	setIfPresent(&p.Biography, in.Biography)
	if birth != nil {
		p.BirthDate = birth
	}
}

func setIfPresent(dst **string, src *string) {
	if src != nil {
		*dst = nullable(src)
	}
}

func setIfNonEmpty(dst **string, src *string) {
	if v, ok := nonEmpty(src); ok {
		*dst = &v
	}
}

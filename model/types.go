// Package model provides bean-style fixture types used to exercise the mock
// builder: encapsulated fields behind "Set" mutators and plain accessors,
// covering strings, integers, decimal money, calendar dates and nested
// composites.
package model

import (
	"time"

	"gopkg.in/inf.v0"
)

// Person represents an employee record.
type Person struct {
	name      string
	age       int
	salary    *inf.Dec
	birthDate time.Time
	job       *Job
}

func (p *Person) Name() string         { return p.name }
func (p *Person) Age() int             { return p.age }
func (p *Person) Salary() *inf.Dec     { return p.salary }
func (p *Person) BirthDate() time.Time { return p.birthDate }
func (p *Person) Job() *Job            { return p.job }

func (p *Person) SetName(name string)      { p.name = name }
func (p *Person) SetAge(age int)           { p.age = age }
func (p *Person) SetSalary(s *inf.Dec)     { p.salary = s }
func (p *Person) SetBirthDate(d time.Time) { p.birthDate = d }
func (p *Person) SetJob(job *Job)          { p.job = job }

// Job represents a position held by a person.
type Job struct {
	title   string
	salary  *inf.Dec
	company Company
}

func (j *Job) Title() string    { return j.title }
func (j *Job) Salary() *inf.Dec { return j.salary }
func (j *Job) Company() Company { return j.company }

func (j *Job) SetTitle(title string) { j.title = title }
func (j *Job) SetSalary(s *inf.Dec)  { j.salary = s }
func (j *Job) SetCompany(c Company)  { j.company = c }

// Company represents an employer.
type Company struct {
	name      string
	employees int
	founded   time.Time
}

func (c *Company) Name() string       { return c.name }
func (c *Company) Employees() int     { return c.employees }
func (c *Company) Founded() time.Time { return c.founded }

func (c *Company) SetName(name string)    { c.name = name }
func (c *Company) SetEmployees(n int)     { c.employees = n }
func (c *Company) SetFounded(d time.Time) { c.founded = d }

// Address represents a physical address. All properties are primitive, so
// every field resolves straight from the default value table.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string
	isDefault  bool
}

func (a *Address) Street() string     { return a.street }
func (a *Address) City() string       { return a.city }
func (a *Address) PostalCode() string { return a.postalCode }
func (a *Address) Country() string    { return a.country }
func (a *Address) IsDefault() bool    { return a.isDefault }

func (a *Address) SetStreet(s string)     { a.street = s }
func (a *Address) SetCity(c string)       { a.city = c }
func (a *Address) SetPostalCode(p string) { a.postalCode = p }
func (a *Address) SetCountry(c string)    { a.country = c }
func (a *Address) SetIsDefault(d bool)    { a.isDefault = d }

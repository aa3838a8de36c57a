package domain

import "fmt"

// AdultAge is the minimum age for holding a job or having a spouse.
const AdultAge = 18

// Person may hold a job and have a spouse once they are an adult.
// The spouse is a back-reference: a Person never owns its spouse, and the
// link is normally established by NewFamily.
type Person struct {
	FirstName string
	LastName  string
	Age       int

	job    *Job
	spouse *Person
}

func NewPerson(firstName, lastName string, age int) *Person {
	return &Person{FirstName: firstName, LastName: lastName, Age: age}
}

func (p *Person) IsAdult() bool {
	return p.Age >= AdultAge
}

func (p *Person) Job() *Job {
	return p.job
}

// SetJob is ignored for minors. A nil job always clears the current one.
func (p *Person) SetJob(j *Job) {
	if j == nil {
		p.job = nil
		return
	}
	if !p.IsAdult() {
		return
	}
	p.job = j
}

func (p *Person) Spouse() *Person {
	return p.spouse
}

// SetSpouse is ignored for minors. A nil spouse always clears the current one.
// Only p's side of the link is touched.
func (p *Person) SetSpouse(s *Person) {
	if s == nil {
		p.spouse = nil
		return
	}
	if !p.IsAdult() {
		return
	}
	p.spouse = s
}

// Describe renders the person on one line. The spouse is shown by first name only.
func (p *Person) Describe() string {
	spouse := "None"
	if p.spouse != nil {
		spouse = p.spouse.FirstName
	}
	return fmt.Sprintf("[Person: firstName: %s lastName: %s age: %d job: %s spouse: %s]",
		p.FirstName, p.LastName, p.Age, p.job.Describe(), spouse)
}

func (p *Person) String() string {
	return p.Describe()
}

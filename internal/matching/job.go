package matching

import "github.com/spigell/jobmatch/internal/validation"

// JobFields carries the raw attributes of a job before validation.
type JobFields struct {
	Name          string
	MinAge        int
	MaxAge        int
	TimeCondition string
	Salary        int
}

type Job struct {
	ID            int
	Name          string
	MinAge        int
	MaxAge        int
	TimeCondition TimeCondition
	Salary        int
	// Views counts every recorded view, matched or not.
	Views int

	skillSet
}

// newJob validates fields in the order name, age range, time condition,
// salary and stops at the first failure. The returned job has no ID yet.
func newJob(f JobFields) (*Job, error) {
	if !validation.Name(f.Name) {
		return nil, ErrNameInvalid
	}
	if !validation.AgeRange(f.MinAge, f.MaxAge) {
		return nil, ErrAgeInvalid
	}
	tc, err := ParseTimeCondition(f.TimeCondition)
	if err != nil {
		return nil, err
	}
	if !validation.Salary(f.Salary) {
		return nil, ErrSalaryInvalid
	}

	return &Job{
		Name:          f.Name,
		MinAge:        f.MinAge,
		MaxAge:        f.MaxAge,
		TimeCondition: tc,
		Salary:        f.Salary,
	}, nil
}

// RecordView counts one view of the job. A non-empty skill also increments
// the counter of that skill.
func (j *Job) RecordView(skill string) {
	j.Views++
	if skill != "" {
		j.increment(skill)
	}
}

package matching

import "github.com/spigell/jobmatch/internal/validation"

// UserFields carries the raw attributes of a user before validation.
type UserFields struct {
	Name          string
	Age           int
	TimeCondition string
	Salary        int
}

type User struct {
	ID            int
	Name          string
	Age           int
	TimeCondition TimeCondition
	Salary        int
	// TotalViews counts the jobs this user has viewed.
	TotalViews int

	skillSet
}

func newUser(f UserFields) (*User, error) {
	if !validation.Name(f.Name) {
		return nil, ErrNameInvalid
	}
	if !validation.Age(f.Age) {
		return nil, ErrAgeInvalid
	}
	tc, err := ParseTimeCondition(f.TimeCondition)
	if err != nil {
		return nil, err
	}
	if !validation.Salary(f.Salary) {
		return nil, ErrSalaryInvalid
	}

	return &User{
		Name:          f.Name,
		Age:           f.Age,
		TimeCondition: tc,
		Salary:        f.Salary,
	}, nil
}

// Package validation holds the field predicates for jobs and users.
package validation

import (
	"github.com/go-playground/validator/v10"
)

const (
	// SalaryLimit is exclusive.
	SalaryLimit = 1_000_000_000
	SalaryStep  = 1000
)

var validate = newValidator()

type ageRange struct {
	Min int `validate:"min=0,max=200"`
	Max int `validate:"min=0,max=200,gtefield=Min"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("salarystep", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%SalaryStep == 0
	})

	return v
}

// Name reports whether name has 1 to 10 characters, all letters. Letters of
// any script count, length is measured in runes.
func Name(name string) bool {
	return validate.Var(name, "min=1,max=10,alphaunicode") == nil
}

// Age reports whether age is within [0,200].
func Age(age int) bool {
	return validate.Var(age, "min=0,max=200") == nil
}

// AgeRange reports whether both bounds are valid ages and min does not exceed max.
func AgeRange(minAge, maxAge int) bool {
	return validate.Struct(ageRange{Min: minAge, Max: maxAge}) == nil
}

func TimeCondition(value string) bool {
	return validate.Var(value, "oneof=FULLTIME PARTTIME PROJECT") == nil
}

// Salary reports whether salary is a non-negative multiple of 1000 below one billion.
func Salary(salary int) bool {
	return validate.Var(salary, "min=0,lt=1000000000,salarystep") == nil
}

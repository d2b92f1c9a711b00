package matching

import "errors"

// The error messages double as command replies.
var (
	ErrNameInvalid          = errors.New("invalid name")
	ErrAgeInvalid           = errors.New("invalid age")
	ErrAgeIntervalInvalid   = errors.New("invalid age interval")
	ErrTimeConditionInvalid = errors.New("invalid time condition")
	ErrSalaryInvalid        = errors.New("invalid salary")
	ErrSkillInvalid         = errors.New("invalid skill")
	ErrSkillDuplicate       = errors.New("repeated skill")
	ErrNotFound             = errors.New("invalid index")
	ErrFieldInvalid         = errors.New("invalid field")
)

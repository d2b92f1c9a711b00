package matching

import "github.com/spigell/jobmatch/internal/validation"

// TimeCondition is the working schedule of a job or the one a user wants.
type TimeCondition string

const (
	FullTime TimeCondition = "FULLTIME"
	PartTime TimeCondition = "PARTTIME"
	Project  TimeCondition = "PROJECT"
)

// ParseTimeCondition converts a raw token to a TimeCondition.
func ParseTimeCondition(s string) (TimeCondition, error) {
	if !validation.TimeCondition(s) {
		return "", ErrTimeConditionInvalid
	}
	return TimeCondition(s), nil
}

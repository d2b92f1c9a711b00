// Package ranking scores how well a job fits a user and orders jobs by that score.
package ranking

import (
	"sort"

	"github.com/spigell/jobmatch/internal/matching"
)

const (
	// DefaultLimit is the number of jobs returned by TopJobsFor when no limit is set.
	DefaultLimit = 5

	skillHit  = 3
	skillMiss = -1

	salaryReward = 1000
	// idWeight leaves room for the job id below the weighted sum.
	idWeight = 1000
)

// timeWeights is keyed by job condition, then user condition.
var timeWeights = map[matching.TimeCondition]map[matching.TimeCondition]int{
	matching.FullTime: {matching.FullTime: 10, matching.PartTime: 5, matching.Project: 4},
	matching.PartTime: {matching.FullTime: 5, matching.PartTime: 10, matching.Project: 5},
	matching.Project:  {matching.FullTime: 4, matching.PartTime: 5, matching.Project: 10},
}

// Ranked is a job together with its score for one user.
type Ranked struct {
	JobID int
	Score int
}

// Breakdown holds the terms a score is built from.
type Breakdown struct {
	Age    int
	Skill  int
	Time   int
	Salary int
}

// Sum returns the unweighted total of the terms.
func (b Breakdown) Sum() int {
	return b.Age + b.Skill + b.Time + b.Salary
}

// Explain computes the individual score terms of job for user.
func Explain(u *matching.User, j *matching.Job) Breakdown {
	return Breakdown{
		Age:    AgeTerm(u.Age, j.MinAge, j.MaxAge),
		Skill:  SkillTerm(u, j),
		Time:   TimeTerm(j.TimeCondition, u.TimeCondition),
		Salary: SalaryTerm(u.Salary, j.Salary),
	}
}

// Score combines the terms of job for user into one comparable value. The job
// id sits in the low digits, so two jobs never share a score and among equal
// sums the job with the higher id scores higher.
func Score(u *matching.User, j *matching.Job) int {
	return Explain(u, j).Sum()*idWeight + j.ID
}

// AgeTerm rewards an age deep inside the band and penalizes the distance to
// the band when outside of it.
func AgeTerm(age, minAge, maxAge int) int {
	switch {
	case age < minAge:
		return age - minAge
	case age > maxAge:
		return maxAge - age
	default:
		return min(maxAge-age, age-minAge)
	}
}

// SkillTerm walks the job skills only: held ones add 3, missing ones take 1.
func SkillTerm(u *matching.User, j *matching.Job) int {
	term := 0
	for _, skill := range j.Skills() {
		if u.Has(skill) {
			term += skillHit
		} else {
			term += skillMiss
		}
	}
	return term
}

func TimeTerm(job, user matching.TimeCondition) int {
	return timeWeights[job][user]
}

// SalaryTerm is inversely proportional to the salary gap. Equal salaries count as a gap of one.
func SalaryTerm(userSalary, jobSalary int) int {
	gap := userSalary - jobSalary
	if gap < 0 {
		gap = -gap
	}
	return salaryReward / max(1, gap)
}

// TopJobsFor scores every job for the user and returns at most limit of them,
// best first. A non-positive limit falls back to DefaultLimit.
func TopJobsFor(u *matching.User, jobs []*matching.Job, limit int) []Ranked {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]Ranked, 0, len(jobs))
	for _, job := range jobs {
		ranked = append(ranked, Ranked{JobID: job.ID, Score: Score(u, job)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

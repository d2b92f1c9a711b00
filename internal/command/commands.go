package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spigell/jobmatch/internal/matching"
	"github.com/spigell/jobmatch/internal/ranking"
)

const (
	replySkillAdded = "skill added"
	replyTracked    = "tracked"
	replyEdited     = "edited"
)

// Command describes one textual command and its positional parameters.
type Command struct {
	Name    string
	Params  []string
	Summary string

	apply func(d *Dispatcher, args map[string]any) (string, error)
}

// Usage renders the command with its parameters, e.g. "VIEW user_id job_id".
func (c *Command) Usage() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Params, " "))
}

type addJobArgs struct {
	Name          string `mapstructure:"name"`
	MinAge        int    `mapstructure:"min_age"`
	MaxAge        int    `mapstructure:"max_age"`
	TimeCondition string `mapstructure:"time_condition"`
	Salary        int    `mapstructure:"salary"`
}

type addUserArgs struct {
	Name          string `mapstructure:"name"`
	Age           int    `mapstructure:"age"`
	TimeCondition string `mapstructure:"time_condition"`
	Salary        int    `mapstructure:"salary"`
}

type skillArgs struct {
	ID    int    `mapstructure:"id"`
	Skill string `mapstructure:"skill"`
}

type idArgs struct {
	ID int `mapstructure:"id"`
}

type pairArgs struct {
	UserID int `mapstructure:"user_id"`
	JobID  int `mapstructure:"job_id"`
}

type editArgs struct {
	ID    int    `mapstructure:"id"`
	Field string `mapstructure:"field"`
	Value string `mapstructure:"value"`
}

// commands is kept in the order used by Describe.
var commands = []*Command{
	{
		Name:    "ADD-JOB",
		Params:  []string{"name", "min_age", "max_age", "time_condition", "salary"},
		Summary: "register a job and print its id",
		apply:   addJob,
	},
	{
		Name:    "ADD-USER",
		Params:  []string{"name", "age", "time_condition", "salary"},
		Summary: "register a user and print its id",
		apply:   addUser,
	},
	{
		Name:    "ADD-JOB-SKILL",
		Params:  []string{"id", "skill"},
		Summary: "attach a catalog skill to a job",
		apply:   addJobSkill,
	},
	{
		Name:    "ADD-USER-SKILL",
		Params:  []string{"id", "skill"},
		Summary: "attach a catalog skill to a user",
		apply:   addUserSkill,
	},
	{
		Name:    "VIEW",
		Params:  []string{"user_id", "job_id"},
		Summary: "track a user viewing a job",
		apply:   view,
	},
	{
		Name:    "JOB-STATUS",
		Params:  []string{"id"},
		Summary: "print name, views and skill views of a job",
		apply:   jobStatus,
	},
	{
		Name:    "USER-STATUS",
		Params:  []string{"id"},
		Summary: "print name and skill views of a user",
		apply:   userStatus,
	},
	{
		Name:    "GET-JOBLIST",
		Params:  []string{"user_id"},
		Summary: "print the best jobs for a user as (jobId,score) pairs",
		apply:   jobList,
	},
	{
		Name:    "SCORE",
		Params:  []string{"user_id", "job_id"},
		Summary: "print the score of a job for a user",
		apply:   score,
	},
	{
		Name:    "EDIT-JOB",
		Params:  []string{"id", "field", "value"},
		Summary: "change name, min_age, max_age, time_condition or salary of a job",
		apply:   editJob,
	},
	{
		Name:    "EDIT-USER",
		Params:  []string{"id", "field", "value"},
		Summary: "change name, age, time_condition or salary of a user",
		apply:   editUser,
	},
}

// Describe returns the supported commands in a stable order.
func Describe() []*Command {
	return append([]*Command(nil), commands...)
}

func addJob(d *Dispatcher, args map[string]any) (string, error) {
	var a addJobArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}

	id, err := d.deps.Store.CreateJob(matching.JobFields(a))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(id), nil
}

func addUser(d *Dispatcher, args map[string]any) (string, error) {
	var a addUserArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}

	id, err := d.deps.Store.CreateUser(matching.UserFields(a))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(id), nil
}

func addJobSkill(d *Dispatcher, args map[string]any) (string, error) {
	var a skillArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}
	if err := d.deps.Store.AddJobSkill(a.ID, a.Skill); err != nil {
		return "", err
	}
	return replySkillAdded, nil
}

func addUserSkill(d *Dispatcher, args map[string]any) (string, error) {
	var a skillArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}
	if err := d.deps.Store.AddUserSkill(a.ID, a.Skill); err != nil {
		return "", err
	}
	return replySkillAdded, nil
}

func view(d *Dispatcher, args map[string]any) (string, error) {
	var a pairArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}
	if err := d.deps.Store.View(a.UserID, a.JobID); err != nil {
		return "", err
	}
	return replyTracked, nil
}

func jobStatus(d *Dispatcher, args map[string]any) (string, error) {
	var a idArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}
	job, err := d.deps.Store.Job(a.ID)
	if err != nil {
		return "", err
	}
	return job.StatusLine(), nil
}

func userStatus(d *Dispatcher, args map[string]any) (string, error) {
	var a idArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}
	user, err := d.deps.Store.User(a.ID)
	if err != nil {
		return "", err
	}
	return user.StatusLine(), nil
}

func jobList(d *Dispatcher, args map[string]any) (string, error) {
	var a struct {
		UserID int `mapstructure:"user_id"`
	}
	if err := decode(args, &a); err != nil {
		return "", err
	}
	user, err := d.deps.Store.User(a.UserID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range ranking.TopJobsFor(user, d.deps.Store.Jobs(), d.config.JobListLimit) {
		fmt.Fprintf(&b, "(%d,%d)", r.JobID, r.Score)
	}
	return b.String(), nil
}

func score(d *Dispatcher, args map[string]any) (string, error) {
	var a pairArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}
	user, err := d.deps.Store.User(a.UserID)
	if err != nil {
		return "", err
	}
	job, err := d.deps.Store.Job(a.JobID)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(ranking.Score(user, job)), nil
}

func editJob(d *Dispatcher, args map[string]any) (string, error) {
	var a editArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}

	store := d.deps.Store
	if _, err := store.Job(a.ID); err != nil {
		return "", err
	}

	var err error
	switch a.Field {
	case "name":
		err = store.RenameJob(a.ID, a.Value)
	case "time_condition":
		err = store.SetJobTimeCondition(a.ID, a.Value)
	case "min_age", "max_age", "salary":
		value, convErr := decodeInt(a.Value)
		if convErr != nil {
			return "", convErr
		}
		switch a.Field {
		case "min_age":
			err = store.SetJobMinAge(a.ID, value)
		case "max_age":
			err = store.SetJobMaxAge(a.ID, value)
		default:
			err = store.SetJobSalary(a.ID, value)
		}
	default:
		err = matching.ErrFieldInvalid
	}

	if err != nil {
		return "", err
	}
	return replyEdited, nil
}

func editUser(d *Dispatcher, args map[string]any) (string, error) {
	var a editArgs
	if err := decode(args, &a); err != nil {
		return "", err
	}

	store := d.deps.Store
	if _, err := store.User(a.ID); err != nil {
		return "", err
	}

	var err error
	switch a.Field {
	case "name":
		err = store.RenameUser(a.ID, a.Value)
	case "time_condition":
		err = store.SetUserTimeCondition(a.ID, a.Value)
	case "age", "salary":
		value, convErr := decodeInt(a.Value)
		if convErr != nil {
			return "", convErr
		}
		if a.Field == "age" {
			err = store.SetUserAge(a.ID, value)
		} else {
			err = store.SetUserSalary(a.ID, value)
		}
	default:
		err = matching.ErrFieldInvalid
	}

	if err != nil {
		return "", err
	}
	return replyEdited, nil
}

// IsKnown reports whether name is a supported command.
func IsKnown(name string) bool {
	for _, c := range commands {
		if c.Name == name {
			return true
		}
	}
	return false
}

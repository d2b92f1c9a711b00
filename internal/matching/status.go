package matching

import (
	"fmt"
	"strconv"
	"strings"
)

const pairSeparator = ", "

// Status is the decoded form of a status line.
type Status struct {
	Name   string
	Views  int
	Skills []SkillCount
}

// StatusLine renders the job as name-views-(skill,count, ...). The skill part
// is omitted when the job has no skills.
func (j *Job) StatusLine() string {
	head := fmt.Sprintf("%s-%d", j.Name, j.Views)
	return withSkills(head, j.SkillCounts())
}

// StatusLine renders the user as name-(skill,count, ...). The skill part is
// omitted when the user has no skills.
func (u *User) StatusLine() string {
	return withSkills(u.Name, u.SkillCounts())
}

func withSkills(head string, skills []SkillCount) string {
	if len(skills) == 0 {
		return head
	}

	pairs := make([]string, 0, len(skills))
	for _, sc := range skills {
		pairs = append(pairs, fmt.Sprintf("%s,%d", sc.Skill, sc.Count))
	}

	return head + "-(" + strings.Join(pairs, pairSeparator) + ")"
}

// ParseJobStatus decodes a line produced by Job.StatusLine.
func ParseJobStatus(line string) (*Status, error) {
	head, skills, err := splitStatus(line)
	if err != nil {
		return nil, err
	}

	idx := strings.LastIndex(head, "-")
	if idx <= 0 {
		return nil, fmt.Errorf("job status %q: missing views", line)
	}

	views, err := strconv.Atoi(head[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("job status %q: views: %w", line, err)
	}

	return &Status{Name: head[:idx], Views: views, Skills: skills}, nil
}

// ParseUserStatus decodes a line produced by User.StatusLine.
func ParseUserStatus(line string) (*Status, error) {
	head, skills, err := splitStatus(line)
	if err != nil {
		return nil, err
	}
	if head == "" {
		return nil, fmt.Errorf("user status %q: missing name", line)
	}

	return &Status{Name: head, Skills: skills}, nil
}

func splitStatus(line string) (string, []SkillCount, error) {
	if !strings.HasSuffix(line, ")") {
		return line, nil, nil
	}

	idx := strings.Index(line, "-(")
	if idx < 0 {
		return "", nil, fmt.Errorf("status %q: unbalanced skill list", line)
	}

	body := line[idx+2 : len(line)-1]
	pairs := strings.Split(body, pairSeparator)
	skills := make([]SkillCount, 0, len(pairs))
	for _, pair := range pairs {
		comma := strings.LastIndex(pair, ",")
		if comma <= 0 {
			return "", nil, fmt.Errorf("status %q: malformed pair %q", line, pair)
		}

		count, err := strconv.Atoi(pair[comma+1:])
		if err != nil {
			return "", nil, fmt.Errorf("status %q: count of %q: %w", line, pair[:comma], err)
		}

		skills = append(skills, SkillCount{Skill: pair[:comma], Count: count})
	}

	return line[:idx], skills, nil
}

package matching

import "github.com/spigell/jobmatch/internal/validation"

// sequence hands out identities starting at 1.
type sequence struct {
	last int
}

func (s *sequence) next() int {
	s.last++
	return s.last
}

// Store owns the job and user registries. It is not safe for concurrent use:
// callers are expected to run one command at a time.
type Store struct {
	catalog *Catalog

	jobs    map[int]*Job
	users   map[int]*User
	jobSeq  sequence
	userSeq sequence
}

func NewStore(catalog *Catalog) *Store {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}

	return &Store{
		catalog: catalog,
		jobs:    make(map[int]*Job),
		users:   make(map[int]*User),
	}
}

func (s *Store) Catalog() *Catalog {
	return s.catalog
}

// CreateJob validates fields and registers a new job. An identity is consumed
// only when validation succeeds.
func (s *Store) CreateJob(f JobFields) (int, error) {
	job, err := newJob(f)
	if err != nil {
		return 0, err
	}

	job.ID = s.jobSeq.next()
	s.jobs[job.ID] = job

	return job.ID, nil
}

// CreateUser validates fields and registers a new user. An identity is
// consumed only when validation succeeds.
func (s *Store) CreateUser(f UserFields) (int, error) {
	user, err := newUser(f)
	if err != nil {
		return 0, err
	}

	user.ID = s.userSeq.next()
	s.users[user.ID] = user

	return user.ID, nil
}

func (s *Store) Job(id int) (*Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *Store) User(id int) (*User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

// Jobs returns every registered job ordered by identity.
func (s *Store) Jobs() []*Job {
	jobs := make([]*Job, 0, len(s.jobs))
	for id := 1; id <= s.jobSeq.last; id++ {
		if job, ok := s.jobs[id]; ok {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

func (s *Store) JobsLen() int {
	return len(s.jobs)
}

func (s *Store) UsersLen() int {
	return len(s.users)
}

func (s *Store) AddJobSkill(id int, skill string) error {
	job, err := s.Job(id)
	if err != nil {
		return err
	}
	if !s.catalog.Contains(skill) {
		return ErrSkillInvalid
	}
	return job.add(skill)
}

func (s *Store) AddUserSkill(id int, skill string) error {
	user, err := s.User(id)
	if err != nil {
		return err
	}
	if !s.catalog.Contains(skill) {
		return ErrSkillInvalid
	}
	return user.add(skill)
}

// View records that the user viewed the job.
func (s *Store) View(userID, jobID int) error {
	user, err := s.User(userID)
	if err != nil {
		return err
	}
	job, err := s.Job(jobID)
	if err != nil {
		return err
	}

	View(user, job)
	return nil
}

func (s *Store) RenameJob(id int, name string) error {
	job, err := s.Job(id)
	if err != nil {
		return err
	}
	if !validation.Name(name) {
		return ErrNameInvalid
	}
	job.Name = name
	return nil
}

// SetJobMinAge changes the lower age bound. The new bound must keep the range valid.
func (s *Store) SetJobMinAge(id, minAge int) error {
	job, err := s.Job(id)
	if err != nil {
		return err
	}
	if !validation.AgeRange(minAge, job.MaxAge) {
		return ErrAgeIntervalInvalid
	}
	job.MinAge = minAge
	return nil
}

// SetJobMaxAge changes the upper age bound. The new bound must keep the range valid.
func (s *Store) SetJobMaxAge(id, maxAge int) error {
	job, err := s.Job(id)
	if err != nil {
		return err
	}
	if !validation.AgeRange(job.MinAge, maxAge) {
		return ErrAgeIntervalInvalid
	}
	job.MaxAge = maxAge
	return nil
}

func (s *Store) SetJobTimeCondition(id int, value string) error {
	job, err := s.Job(id)
	if err != nil {
		return err
	}
	tc, err := ParseTimeCondition(value)
	if err != nil {
		return err
	}
	job.TimeCondition = tc
	return nil
}

func (s *Store) SetJobSalary(id, salary int) error {
	job, err := s.Job(id)
	if err != nil {
		return err
	}
	if !validation.Salary(salary) {
		return ErrSalaryInvalid
	}
	job.Salary = salary
	return nil
}

func (s *Store) RenameUser(id int, name string) error {
	user, err := s.User(id)
	if err != nil {
		return err
	}
	if !validation.Name(name) {
		return ErrNameInvalid
	}
	user.Name = name
	return nil
}

func (s *Store) SetUserAge(id, age int) error {
	user, err := s.User(id)
	if err != nil {
		return err
	}
	if !validation.Age(age) {
		return ErrAgeInvalid
	}
	user.Age = age
	return nil
}

func (s *Store) SetUserTimeCondition(id int, value string) error {
	user, err := s.User(id)
	if err != nil {
		return err
	}
	tc, err := ParseTimeCondition(value)
	if err != nil {
		return err
	}
	user.TimeCondition = tc
	return nil
}

func (s *Store) SetUserSalary(id, salary int) error {
	user, err := s.User(id)
	if err != nil {
		return err
	}
	if !validation.Salary(salary) {
		return ErrSalaryInvalid
	}
	user.Salary = salary
	return nil
}

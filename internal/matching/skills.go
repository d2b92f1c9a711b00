package matching

// SkillCount pairs a skill with its view counter.
type SkillCount struct {
	Skill string
	Count int
}

// skillSet keeps the skills of one entity in insertion order together with
// their view counters. A skill without a counter entry has never been part of
// a view.
type skillSet struct {
	names  []string
	counts map[string]int
}

func (s *skillSet) Has(skill string) bool {
	for _, name := range s.names {
		if name == skill {
			return true
		}
	}
	return false
}

func (s *skillSet) add(skill string) error {
	if s.Has(skill) {
		return ErrSkillDuplicate
	}
	s.names = append(s.names, skill)
	return nil
}

func (s *skillSet) increment(skill string) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	s.counts[skill]++
}

// track creates a zero counter for skill unless one already exists.
func (s *skillSet) track(skill string) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	if _, ok := s.counts[skill]; !ok {
		s.counts[skill] = 0
	}
}

// Skills returns the skill names in insertion order.
func (s *skillSet) Skills() []string {
	return append([]string(nil), s.names...)
}

// SkillViews returns the counter of skill and whether it has ever been set.
func (s *skillSet) SkillViews(skill string) (int, bool) {
	count, ok := s.counts[skill]
	return count, ok
}

// SkillCounts returns every skill with its counter, missing counters as 0.
func (s *skillSet) SkillCounts() []SkillCount {
	result := make([]SkillCount, 0, len(s.names))
	for _, name := range s.names {
		result = append(result, SkillCount{Skill: name, Count: s.counts[name]})
	}
	return result
}

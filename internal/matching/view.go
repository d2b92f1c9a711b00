package matching

// View checks the skills of u against j.
//
// Every user skill also held by the job records a view of that skill on the
// job and bumps the user's counter for it. When nothing matches the job still
// records one view without a skill, and each user skill that has no counter
// yet gets an explicit zero.
func View(u *User, j *Job) {
	u.TotalViews++

	matched := false
	for _, skill := range u.names {
		if !j.Has(skill) {
			continue
		}
		matched = true
		j.RecordView(skill)
		u.increment(skill)
	}

	if matched {
		return
	}

	j.RecordView("")
	for _, skill := range u.names {
		u.track(skill)
	}
}

package profile

import "sort"

// DayTasks is the tasks scheduled for one calendar date.
type DayTasks struct {
	Date  string
	Tasks []Task
}

// GroupByDate buckets tasks by their scheduled date and returns the groups
// in ascending date order. ISO dates sort lexicographically, so plain string
// comparison gives chronological order. Within a group the original task
// order is preserved.
func GroupByDate(tasks []Task) []DayTasks {
	byDate := make(map[string][]Task)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DayTasks, 0, len(dates))
	for _, d := range dates {
		out = append(out, DayTasks{Date: d, Tasks: byDate[d]})
	}
	return out
}

// CompletedStats summarizes completion progress across a task set.
type CompletedStats struct {
	Total     int
	Completed int
	EarnedXP  int
	TotalXP   int
}

// Stats tallies completion counts and xp over the given tasks.
func Stats(tasks []Task) CompletedStats {
	var s CompletedStats
	for _, t := range tasks {
		s.Total++
		s.TotalXP += t.XP
		if t.IsCompleted {
			s.Completed++
			s.EarnedXP += t.XP
		}
	}
	return s
}

// StatsBySubject tallies completion per subject label, returned in
// alphabetical label order.
func StatsBySubject(tasks []Task) []SubjectStats {
	byLabel := make(map[string]*SubjectStats)
	for _, t := range tasks {
		st, ok := byLabel[t.SubjectID]
		if !ok {
			st = &SubjectStats{Subject: t.SubjectID}
			byLabel[t.SubjectID] = st
		}
		st.Total++
		if t.IsCompleted {
			st.Completed++
			st.EarnedXP += t.XP
		}
	}

	labels := make([]string, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]SubjectStats, 0, len(labels))
	for _, l := range labels {
		out = append(out, *byLabel[l])
	}
	return out
}

// SubjectStats is completion progress for one subject label.
type SubjectStats struct {
	Subject   string
	Total     int
	Completed int
	EarnedXP  int
}

// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"

	"github.com/gitfolio/gitfolio/internal/domain"
)

// AggregateSkills derives the ordered skill list from a repository list.
// It is a pure function: each repository's primary language counts once,
// each topic tag counts once per occurrence, and the result is sorted by
// descending count. Ties keep first-seen order. Names from the fixed icon
// table that never occurred are appended afterward, in table order, so the
// page always shows a baseline skill set.
func AggregateSkills(repos []domain.Repository) []domain.Skill {
	counts := make(map[string]int)
	var order []string

	bump := func(name string) {
		if name == "" {
			return
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	for _, repo := range repos {
		bump(repo.Language)
		for _, topic := range repo.Topics {
			bump(topic)
		}
	}

	skills := make([]domain.Skill, 0, len(order)+len(domain.SkillIcons))
	for _, name := range order {
		skills = append(skills, domain.Skill{
			Name:  name,
			Count: counts[name],
			Icon:  iconFor(name),
		})
	}
	sort.SliceStable(skills, func(i, j int) bool { return skills[i].Count > skills[j].Count })

	for _, entry := range domain.SkillIcons {
		if _, seen := counts[entry.Name]; !seen {
			skills = append(skills, domain.Skill{Name: entry.Name, Icon: entry.Icon})
		}
	}
	return skills
}

func iconFor(name string) string {
	for _, entry := range domain.SkillIcons {
		if entry.Name == name {
			return entry.Icon
		}
	}
	return domain.DefaultSkillIcon
}

// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Profile is the fetched public user-identity record. It is written once,
// right after the profile fetch succeeds, and never mutated afterwards.
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Location  string `json:"location"`
	Blog      string `json:"blog"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// Repository is one fetched project record with the metadata the page shows.
type Repository struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	Language    string    `json:"language,omitempty"`
	License     string    `json:"license,omitempty"`
	HTMLURL     string    `json:"html_url"`
	PushedAt    time.Time `json:"pushed_at"`
	Topics      []string  `json:"topics,omitempty"`
}

// Skill is a derived display entry: a language or topic tag, how often it
// appeared across the repository list, and the icon it renders with.
type Skill struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}

// StarSummary holds the stargazer roll-up shown in the about section.
type StarSummary struct {
	Total  int     `json:"total"`
	Median float64 `json:"median"`
	Max    int     `json:"max"`
}

// Social holds the outbound profile links rendered at the bottom of the page.
// GitHub is always derived from the configured username; the rest are optional.
type Social struct {
	GitHub   string `json:"github"`
	Blog     string `json:"blog,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// Portfolio is everything the page renders. Profile is nil when the profile
// fetch failed; Repos and Pinned are empty on their respective failures. The
// renderer degrades to placeholders rather than erroring on any of these.
type Portfolio struct {
	Profile *Profile     `json:"profile,omitempty"`
	Repos   []Repository `json:"repos"`
	Pinned  []Repository `json:"pinned,omitempty"`
	Skills  []Skill      `json:"skills"`
	Stars   StarSummary  `json:"stars"`
	Social  Social       `json:"social"`
}

// SkillIcon maps a known skill name to its display icon class.
type SkillIcon struct {
	Name string
	Icon string
}

// SkillIcons is the fixed lookup table of known skills. Order matters: names
// that never occur in the fetched repositories are appended to the skill list
// in this order, so the page always shows a baseline skill set.
var SkillIcons = []SkillIcon{
	{Name: "Go", Icon: "devicon-go-original-wordmark"},
	{Name: "TypeScript", Icon: "devicon-typescript-plain"},
	{Name: "JavaScript", Icon: "devicon-javascript-plain"},
	{Name: "Python", Icon: "devicon-python-plain"},
	{Name: "Rust", Icon: "devicon-rust-original"},
	{Name: "HTML", Icon: "devicon-html5-plain"},
	{Name: "CSS", Icon: "devicon-css3-plain"},
	{Name: "Shell", Icon: "devicon-bash-plain"},
	{Name: "docker", Icon: "devicon-docker-plain"},
	{Name: "kubernetes", Icon: "devicon-kubernetes-plain"},
	{Name: "postgresql", Icon: "devicon-postgresql-plain"},
}

// DefaultSkillIcon is the fallback for skill names outside the lookup table.
const DefaultSkillIcon = "devicon-github-original"

package domain

import (
	"encoding/json"
	"fmt"
)

// Profile is the professional background a user maintains.
// Field names match the stored document: users/{uid}/profile/main.
type Profile struct {
	Name         string       `json:"name" firestore:"name" yaml:"name"`
	Email        string       `json:"email" firestore:"email" yaml:"email"`
	Phone        string       `json:"phone" firestore:"phone" yaml:"phone"`
	Location     string       `json:"location" firestore:"location" yaml:"location"`
	Experience   []Experience `json:"experience" firestore:"experience" yaml:"experience"`
	Education    []Education  `json:"education" firestore:"education" yaml:"education"`
	Projects     []Project    `json:"projects" firestore:"projects" yaml:"projects"`
	Skills       []string     `json:"skills" firestore:"skills" yaml:"skills"`
	Achievements []string     `json:"achievements" firestore:"achievements" yaml:"achievements"`
	Links        Links        `json:"links" firestore:"links" yaml:"links"`
}

type Experience struct {
	Title       string `json:"title" firestore:"title" yaml:"title"`
	Company     string `json:"company" firestore:"company" yaml:"company"`
	Years       string `json:"years" firestore:"years" yaml:"years"`
	Description string `json:"description" firestore:"description" yaml:"description"`
}

// Education carries either a CGPA or a percentage score.
type Education struct {
	Degree      string `json:"degree" firestore:"degree" yaml:"degree"`
	Institution string `json:"institution" firestore:"institution" yaml:"institution"`
	Years       string `json:"years" firestore:"years" yaml:"years"`
	CGPA        string `json:"cgpa,omitempty" firestore:"cgpa,omitempty" yaml:"cgpa,omitempty"`
	Percentage  string `json:"percentage,omitempty" firestore:"percentage,omitempty" yaml:"percentage,omitempty"`
}

// Score returns the CGPA if set, otherwise the percentage.
func (e Education) Score() string {
	if e.CGPA != "" {
		return e.CGPA
	}
	return e.Percentage
}

type Project struct {
	Title       string `json:"title" firestore:"title" yaml:"title"`
	Description string `json:"description" firestore:"description" yaml:"description"`
}

type Links struct {
	GitHub   string `json:"github" firestore:"github" yaml:"github"`
	LinkedIn string `json:"linkedin" firestore:"linkedin" yaml:"linkedin"`
}

// Document converts the profile into the plain map form stored by the
// document backends (nested values are map[string]any and []any).
func (p Profile) Document() (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal profile document: %w", err)
	}
	return doc, nil
}

// FromDocument decodes a stored document back into a Profile.
// Unknown keys are ignored.
func FromDocument(doc map[string]any) (Profile, error) {
	var p Profile
	if doc == nil {
		return p, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return p, fmt.Errorf("marshal profile document: %w", err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode profile document: %w", err)
	}
	return p, nil
}

package domain

import "time"

// UnknownName is displayed for catalog ids that no longer resolve.
// A dangling reference is a display concern, never an error.
const UnknownName = "Unknown"

type SubProject struct {
	ID   string
	Name string
	Code string
}

type Project struct {
	ID          string
	Name        string
	Code        string
	SubProjects []SubProject
	CreatedAt   time.Time
}

// NameIndex resolves catalog ids to display names.
type NameIndex struct {
	projects    map[string]string
	subProjects map[string]string
}

// BuildNameIndex flattens the catalog into id→name lookups.
func BuildNameIndex(projects []*Project) NameIndex {
	ix := NameIndex{
		projects:    make(map[string]string),
		subProjects: make(map[string]string),
	}
	for _, p := range projects {
		ix.projects[p.ID] = p.Name
		for _, sp := range p.SubProjects {
			ix.subProjects[sp.ID] = sp.Name
		}
	}
	return ix
}

func (ix NameIndex) ProjectName(id string) string {
	if name, ok := ix.projects[id]; ok {
		return name
	}
	return UnknownName
}

func (ix NameIndex) SubProjectName(id string) string {
	if name, ok := ix.subProjects[id]; ok {
		return name
	}
	return UnknownName
}

// Package catalog holds the static reference data the rest of the app keys
// on: target roles with per-skill required levels, curated learning
// resources per skill, and the keyword aliases the resume extractor scans
// for. Loaded once at init and never mutated at runtime.
package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Role is a target role with its skill requirements (levels 0-10).
type Role struct {
	Name         string
	Requirements map[string]float64
}

// Resource is a curated learning resource for a skill.
type Resource struct {
	Title    string
	Type     string // Course, Tutorials, Book
	Duration string
	Platform string
	URL      string
}

type catalogData struct {
	roles     []Role
	byName    map[string]*Role
	resources map[string][]Resource
	aliases   map[string][]string
}

var c *catalogData

func buildCatalog(roles []Role, resources map[string][]Resource, aliases map[string][]string) *catalogData {
	cd := &catalogData{
		roles:     roles,
		byName:    make(map[string]*Role, len(roles)),
		resources: resources,
		aliases:   aliases,
	}
	for i := range cd.roles {
		r := &cd.roles[i]
		if _, dup := cd.byName[r.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate role %q", r.Name))
		}
		for skill, level := range r.Requirements {
			if level < 0 || level > 10 {
				panic(fmt.Sprintf("catalog: role %q skill %q level %v out of [0,10]", r.Name, skill, level))
			}
		}
		cd.byName[r.Name] = r
	}
	return cd
}

// Get returns the role by name, or an error if not defined.
func Get(name string) (Role, error) {
	r, ok := c.byName[name]
	if !ok {
		return Role{}, fmt.Errorf("role not found: %q", name)
	}
	return cloneRole(*r), nil
}

// Roles returns all roles in display order.
func Roles() []Role {
	out := make([]Role, len(c.roles))
	for i, r := range c.roles {
		out[i] = cloneRole(r)
	}
	return out
}

// Names returns all role names in display order.
func Names() []string {
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.Name
	}
	return names
}

// RequiredSkills returns the role's skill names sorted alphabetically —
// the canonical iteration order the gap model's tie-break also uses.
func (r Role) RequiredSkills() []string {
	skills := make([]string, 0, len(r.Requirements))
	for s := range r.Requirements {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// Resources returns curated learning resources for a skill (possibly empty).
func Resources(skill string) []Resource {
	return slices.Clone(c.resources[skill])
}

// Aliases returns the keyword alias table keyed by skill name.
// The returned map is shared; callers treat it as read-only.
func Aliases() map[string][]string {
	return c.aliases
}

func cloneRole(r Role) Role {
	reqs := make(map[string]float64, len(r.Requirements))
	for k, v := range r.Requirements {
		reqs[k] = v
	}
	return Role{Name: r.Name, Requirements: reqs}
}

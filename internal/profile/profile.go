// Package profile holds the in-memory session state: the user's target
// role, their per-skill proficiency levels, and quiz progress counters.
// All mutation goes through methods on Profile so persistence stays a
// pure snapshot of this struct.
package profile

import (
	"maps"

	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/store"
)

// Profile is the explicit session state. Zero value is a fresh profile
// with no target role and no rated skills.
type Profile struct {
	TargetRole        string
	Levels            map[string]float64
	QuizzesTaken      int
	QuestionsAnswered int
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{Levels: make(map[string]float64)}
}

// SetTargetRole records the role the user is assessing against.
func (p *Profile) SetTargetRole(role string) {
	p.TargetRole = role
}

// SetLevel records a self-assessed proficiency, clamped to [0, 10].
func (p *Profile) SetLevel(skill string, level float64) {
	if p.Levels == nil {
		p.Levels = make(map[string]float64)
	}
	if level < 0 {
		level = 0
	}
	if level > 10 {
		level = 10
	}
	p.Levels[skill] = level
}

// Level returns the recorded proficiency and whether the skill has
// been rated at all.
func (p *Profile) Level(skill string) (float64, bool) {
	l, ok := p.Levels[skill]
	return l, ok
}

// ApplyQuizResults blends validated quiz scores into the stored levels
// and advances the quiz counters. A skill's first quiz score becomes
// its level outright; later scores average with the previous level.
func (p *Profile) ApplyQuizResults(results map[string]quiz.SkillResult) {
	if p.Levels == nil {
		p.Levels = make(map[string]float64)
	}
	if len(results) == 0 {
		return
	}
	p.QuizzesTaken++
	for skill, r := range results {
		var prev *float64
		if l, ok := p.Levels[skill]; ok {
			prev = &l
		}
		p.Levels[skill] = quiz.BlendLevel(prev, r.Score)
		p.QuestionsAnswered += r.Total
	}
}

// MergeExtracted seeds levels from resume extraction. It only fills
// skills the user has not rated yet; explicit ratings and quiz-verified
// levels always win over keyword guesses.
func (p *Profile) MergeExtracted(extracted map[string]float64) {
	if p.Levels == nil {
		p.Levels = make(map[string]float64)
	}
	for skill, level := range extracted {
		if _, ok := p.Levels[skill]; !ok {
			p.Levels[skill] = level
		}
	}
}

// Snapshot converts the profile to its persisted form.
func (p *Profile) Snapshot() store.SnapshotData {
	return store.SnapshotData{
		Version:           store.SnapshotVersion,
		TargetRole:        p.TargetRole,
		Levels:            maps.Clone(p.Levels),
		QuizzesTaken:      p.QuizzesTaken,
		QuestionsAnswered: p.QuestionsAnswered,
	}
}

// FromSnapshot restores a profile from persisted state. A nil snapshot
// yields a fresh profile.
func FromSnapshot(data *store.SnapshotData) *Profile {
	if data == nil {
		return New()
	}
	p := &Profile{
		TargetRole:        data.TargetRole,
		Levels:            maps.Clone(data.Levels),
		QuizzesTaken:      data.QuizzesTaken,
		QuestionsAnswered: data.QuestionsAnswered,
	}
	if p.Levels == nil {
		p.Levels = make(map[string]float64)
	}
	return p
}

package progression

import "strings"

// Criterion is one weighted scoring dimension of a rubric. Percentage is a
// whole-percent weight in (0,100].
type Criterion struct {
	Title      string
	Percentage int
}

// CriterionSet is an ordered rubric attached to a stage. A set is mutable
// while in draft; once published it is immutable and subsequent score entries
// are validated against exactly its titles.
type CriterionSet struct {
	criteria  []Criterion
	published bool
}

func NewCriterionSet() *CriterionSet {
	return &CriterionSet{}
}

// RestoreCriterionSet rebuilds a set from persisted rows, re-validating the
// construction invariants. A published set must also satisfy the weight
// invariant.
func RestoreCriterionSet(criteria []Criterion, published bool) (*CriterionSet, error) {
	s := NewCriterionSet()
	for _, c := range criteria {
		if err := s.Add(c.Title, c.Percentage); err != nil {
			return nil, err
		}
	}
	if published {
		if err := s.Publish(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a criterion. Titles are unique case-insensitively.
func (s *CriterionSet) Add(title string, percentage int) error {
	if s.published {
		return ErrSetPublished
	}
	if percentage <= 0 || percentage > 100 {
		return ErrInvalidWeight
	}
	for _, c := range s.criteria {
		if strings.EqualFold(c.Title, title) {
			return ErrDuplicateCriterion
		}
	}
	s.criteria = append(s.criteria, Criterion{Title: title, Percentage: percentage})
	return nil
}

// Remove deletes the criterion with the given title (case-insensitive).
// Removing an absent title is a no-op.
func (s *CriterionSet) Remove(title string) error {
	if s.published {
		return ErrSetPublished
	}
	for i, c := range s.criteria {
		if strings.EqualFold(c.Title, title) {
			s.criteria = append(s.criteria[:i], s.criteria[i+1:]...)
			return nil
		}
	}
	return nil
}

// IsPublishable reports whether the set is non-empty and its weights sum to
// exactly 100.
func (s *CriterionSet) IsPublishable() bool {
	return len(s.criteria) > 0 && s.TotalWeight() == 100
}

// Publish freezes the set. Fails with ErrUnbalancedWeights unless the weight
// invariant holds.
func (s *CriterionSet) Publish() error {
	if s.published {
		return ErrSetPublished
	}
	if !s.IsPublishable() {
		return ErrUnbalancedWeights
	}
	s.published = true
	return nil
}

func (s *CriterionSet) Published() bool {
	return s.published
}

func (s *CriterionSet) Len() int {
	return len(s.criteria)
}

func (s *CriterionSet) TotalWeight() int {
	sum := 0
	for _, c := range s.criteria {
		sum += c.Percentage
	}
	return sum
}

// Criteria returns a copy of the criteria in insertion order.
func (s *CriterionSet) Criteria() []Criterion {
	out := make([]Criterion, len(s.criteria))
	copy(out, s.criteria)
	return out
}

// Contains reports whether the set has a criterion with the given title
// (case-insensitive).
func (s *CriterionSet) Contains(title string) bool {
	for _, c := range s.criteria {
		if strings.EqualFold(c.Title, title) {
			return true
		}
	}
	return false
}

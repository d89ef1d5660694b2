package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriterionSetAdd(t *testing.T) {
	t.Run("appends valid criteria in order", func(t *testing.T) {
		s := NewCriterionSet()
		require.NoError(t, s.Add("Presentation", 20))
		require.NoError(t, s.Add("Content", 40))
		require.NoError(t, s.Add("Defense Handling", 40))

		got := s.Criteria()
		require.Len(t, got, 3)
		assert.Equal(t, "Presentation", got[0].Title)
		assert.Equal(t, "Defense Handling", got[2].Title)
	})

	t.Run("rejects duplicate title case-insensitively", func(t *testing.T) {
		s := NewCriterionSet()
		require.NoError(t, s.Add("Clarity", 50))
		assert.ErrorIs(t, s.Add("clarity", 50), ErrDuplicateCriterion)
		assert.ErrorIs(t, s.Add("CLARITY", 10), ErrDuplicateCriterion)
	})

	t.Run("rejects weights outside (0,100]", func(t *testing.T) {
		s := NewCriterionSet()
		assert.ErrorIs(t, s.Add("Zero", 0), ErrInvalidWeight)
		assert.ErrorIs(t, s.Add("Negative", -5), ErrInvalidWeight)
		assert.ErrorIs(t, s.Add("TooBig", 101), ErrInvalidWeight)
		assert.NoError(t, s.Add("Full", 100))
	})
}

func TestCriterionSetRemove(t *testing.T) {
	s := NewCriterionSet()
	require.NoError(t, s.Add("Clarity", 30))
	require.NoError(t, s.Add("Originality", 70))

	t.Run("removes present title", func(t *testing.T) {
		require.NoError(t, s.Remove("clarity"))
		assert.Equal(t, 1, s.Len())
		assert.False(t, s.Contains("Clarity"))
	})

	t.Run("absent title is a no-op", func(t *testing.T) {
		require.NoError(t, s.Remove("Nonexistent"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestIsPublishable(t *testing.T) {
	t.Run("empty set is not publishable", func(t *testing.T) {
		assert.False(t, NewCriterionSet().IsPublishable())
	})

	t.Run("publishable iff weights sum to exactly 100", func(t *testing.T) {
		s := NewCriterionSet()
		require.NoError(t, s.Add("A", 60))
		assert.False(t, s.IsPublishable())
		require.NoError(t, s.Add("B", 39))
		assert.False(t, s.IsPublishable())
		require.NoError(t, s.Remove("B"))
		require.NoError(t, s.Add("B", 40))
		assert.True(t, s.IsPublishable())
	})
}

func TestPublish(t *testing.T) {
	t.Run("fails on unbalanced weights", func(t *testing.T) {
		s := NewCriterionSet()
		require.NoError(t, s.Add("A", 50))
		assert.ErrorIs(t, s.Publish(), ErrUnbalancedWeights)
		assert.False(t, s.Published())
	})

	t.Run("published set rejects further mutation", func(t *testing.T) {
		s := NewCriterionSet()
		require.NoError(t, s.Add("A", 50))
		require.NoError(t, s.Add("B", 50))
		require.NoError(t, s.Publish())
		assert.True(t, s.Published())

		assert.ErrorIs(t, s.Add("C", 10), ErrSetPublished)
		assert.ErrorIs(t, s.Remove("A"), ErrSetPublished)
		assert.ErrorIs(t, s.Publish(), ErrSetPublished)
	})
}

func TestRestoreCriterionSet(t *testing.T) {
	t.Run("round-trips a published set", func(t *testing.T) {
		s, err := RestoreCriterionSet([]Criterion{{"A", 30}, {"B", 70}}, true)
		require.NoError(t, err)
		assert.True(t, s.Published())
		assert.Equal(t, 100, s.TotalWeight())
	})

	t.Run("rejects corrupt published rows", func(t *testing.T) {
		_, err := RestoreCriterionSet([]Criterion{{"A", 30}}, true)
		assert.ErrorIs(t, err, ErrUnbalancedWeights)
	})

	t.Run("draft rows may be unbalanced", func(t *testing.T) {
		s, err := RestoreCriterionSet([]Criterion{{"A", 30}}, false)
		require.NoError(t, err)
		assert.False(t, s.Published())
	})
}

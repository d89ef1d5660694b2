package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, criteria ...Criterion) *CriterionSet {
	t.Helper()
	s, err := RestoreCriterionSet(criteria, false)
	require.NoError(t, err)
	return s
}

func TestValidateScore(t *testing.T) {
	assert.NoError(t, ValidateScore(0))
	assert.NoError(t, ValidateScore(100))
	assert.ErrorIs(t, ValidateScore(-1), ErrScoreOutOfRange)
	assert.ErrorIs(t, ValidateScore(101), ErrScoreOutOfRange)
}

func TestComputeComposite(t *testing.T) {
	t.Run("weighted rounding example", func(t *testing.T) {
		set := mustSet(t,
			Criterion{Title: "Presentation", Percentage: 20},
			Criterion{Title: "Content", Percentage: 40},
			Criterion{Title: "Defense Handling", Percentage: 40},
		)
		got, unknown := ComputeComposite(set, ScoreEntries{
			"Presentation":     80,
			"Content":          70,
			"Defense Handling": 90,
		})
		assert.Equal(t, 80, got)
		assert.Empty(t, unknown)
	})

	t.Run("round half up", func(t *testing.T) {
		// 0.3*85 + 0.7*90 = 25.5 + 63 = 88.5 -> 89
		set := mustSet(t,
			Criterion{Title: "Clarity", Percentage: 30},
			Criterion{Title: "Originality", Percentage: 70},
		)
		got, _ := ComputeComposite(set, ScoreEntries{"Clarity": 85, "Originality": 90})
		assert.Equal(t, 89, got)
	})

	t.Run("unset criteria contribute zero", func(t *testing.T) {
		set := mustSet(t,
			Criterion{Title: "A", Percentage: 50},
			Criterion{Title: "B", Percentage: 50},
		)
		got, _ := ComputeComposite(set, ScoreEntries{"A": 80})
		assert.Equal(t, 40, got)
	})

	t.Run("unknown entry titles are ignored and reported", func(t *testing.T) {
		set := mustSet(t, Criterion{Title: "A", Percentage: 100})
		got, unknown := ComputeComposite(set, ScoreEntries{"A": 60, "Ghost": 99})
		assert.Equal(t, 60, got)
		assert.Equal(t, []string{"Ghost"}, unknown)
	})

	t.Run("empty set scores zero", func(t *testing.T) {
		got, _ := ComputeComposite(NewCriterionSet(), ScoreEntries{"A": 100})
		assert.Equal(t, 0, got)
	})

	t.Run("entry titles match case-insensitively", func(t *testing.T) {
		set := mustSet(t, Criterion{Title: "Clarity", Percentage: 100})
		got, unknown := ComputeComposite(set, ScoreEntries{"clarity": 75})
		assert.Equal(t, 75, got)
		assert.Empty(t, unknown)
	})

	t.Run("deterministic", func(t *testing.T) {
		set := mustSet(t,
			Criterion{Title: "X", Percentage: 33},
			Criterion{Title: "Y", Percentage: 33},
			Criterion{Title: "Z", Percentage: 34},
		)
		entries := ScoreEntries{"X": 71, "Y": 64, "Z": 88}
		first, _ := ComputeComposite(set, entries)
		second, _ := ComputeComposite(set, entries)
		assert.Equal(t, first, second)
	})
}

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

func rec(movie, cinema, day string, nb int, times ...string) core.CanonicalRecord {
	if times == nil {
		times = []string{}
	}
	return core.CanonicalRecord{Movie: movie, Cinema: cinema, ShowtimeDay: day, NbShowings: nb, Showtimes: times}
}

func TestMergeUnionsDuplicateKeys(t *testing.T) {
	out := Merge([]core.CanonicalRecord{
		rec("Playtime", "Christine", "2025-07-30", 1, "13h30"),
		rec("Playtime", "Christine", "2025-07-30", 2, "13h30", "19h00"),
	})

	require.Len(t, out, 1)
	assert.Equal(t, []string{"13h30", "19h00"}, out[0].Showtimes)
	assert.Equal(t, 2, out[0].NbShowings)
}

func TestMergeKeyUniqueness(t *testing.T) {
	out := Merge([]core.CanonicalRecord{
		rec("A", "Christine", "2025-07-30", 1, "11h00"),
		rec("A", "Christine", "2025-07-30", 1, "15h00"),
		rec("A", "Ecoles", "2025-07-30", 1, "11h00"),
		rec("A", "Christine", "2025-07-31", 1, "11h00"),
	})

	seen := make(map[core.RecordKey]bool)
	for _, r := range out {
		assert.False(t, seen[r.Key()], "duplicate key %+v", r.Key())
		seen[r.Key()] = true
	}
	assert.Len(t, out, 3)
}

func TestMergeIdempotence(t *testing.T) {
	input := []core.CanonicalRecord{
		rec("A", "Christine", "2025-07-30", 2, "11h00", "15h00"),
		rec("B", "Ecoles", "2025-07-30", 3),
	}

	once := Merge(input)
	twice := Merge(append(append([]core.CanonicalRecord{}, once...), once...))
	assert.Equal(t, once, twice)
}

func TestMergeCountOnlyRecordsTakeMax(t *testing.T) {
	out := Merge([]core.CanonicalRecord{
		rec("DRACULA", "UGC Ciné Cité Les Halles", "2025-07-31", 2),
		rec("DRACULA", "UGC Ciné Cité Les Halles", "2025-07-31", 5),
	})

	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].NbShowings)
	assert.Empty(t, out[0].Showtimes)
}

func TestMergeCountConsistency(t *testing.T) {
	out := Merge([]core.CanonicalRecord{
		rec("A", "Christine", "2025-07-30", 7, "11h00", "15h00"),
		rec("A", "Christine", "2025-07-30", 1, "15h00"),
	})

	require.Len(t, out, 1)
	assert.Equal(t, len(out[0].Showtimes), out[0].NbShowings)
}

func TestMergeChronologicalTimes(t *testing.T) {
	out := Merge([]core.CanonicalRecord{
		rec("A", "Christine", "2025-07-30", 3, "19h00", "9h30", "13h30"),
	})

	require.Len(t, out, 1)
	// Minute-of-day order, not lexicographic.
	assert.Equal(t, []string{"9h30", "13h30", "19h00"}, out[0].Showtimes)
}

func TestMergeOrdering(t *testing.T) {
	out := Merge([]core.CanonicalRecord{
		rec("Zulu", "Ecoles", "2025-07-31", 1, "11h00"),
		rec("Alpha", "Christine", "2025-07-31", 1, "11h00"),
		rec("Beta", "Christine", "2025-07-30", 1, "11h00"),
		rec("Alpha", "Christine", "2025-07-30", 1, "15h00"),
	})

	require.Len(t, out, 4)
	// Cinema asc, then date asc, then first-seen movie order.
	assert.Equal(t, "Beta", out[0].Movie)
	assert.Equal(t, "Alpha", out[1].Movie)
	assert.Equal(t, "2025-07-30", out[1].ShowtimeDay)
	assert.Equal(t, "Alpha", out[2].Movie)
	assert.Equal(t, "2025-07-31", out[2].ShowtimeDay)
	assert.Equal(t, "Ecoles", out[3].Cinema)
}

func TestMergeDeterminism(t *testing.T) {
	input := []core.CanonicalRecord{
		rec("A", "Christine", "2025-07-30", 1, "11h00"),
		rec("B", "Ecoles", "2025-07-31", 2, "13h30", "19h00"),
		rec("A", "Christine", "2025-07-30", 1, "21h00"),
	}
	assert.Equal(t, Merge(input), Merge(input))
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil))
}

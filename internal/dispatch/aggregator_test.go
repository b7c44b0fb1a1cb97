package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebyte/securebyte/pkg/types"
)

func TestBuild_RestoresOrder(t *testing.T) {
	// Outcomes arrive in completion order, which is arbitrary.
	outcomes := []types.Outcome{
		{ChunkIndex: 2, Status: types.StatusOk, Text: "third"},
		{ChunkIndex: 0, Status: types.StatusOk, Text: "first"},
		{ChunkIndex: 3, Status: types.StatusFailed, Text: "could not analyze chunk: timeout"},
		{ChunkIndex: 1, Status: types.StatusOk, Text: "second"},
	}

	report, err := Build(outcomes, 4)

	require.NoError(t, err)
	require.NoError(t, report.Validate())
	assert.Equal(t, 4, report.ChunkCount)
	assert.Equal(t, 1, report.FailedCount())

	want := []string{"first", "second", "third", "could not analyze chunk: timeout"}
	for i, out := range report.Outcomes {
		assert.Equal(t, i, out.ChunkIndex)
		assert.Equal(t, want[i], out.Text)
	}

	// Input slice is left untouched.
	assert.Equal(t, 2, outcomes[0].ChunkIndex)
}

func TestBuild_MissingIndex(t *testing.T) {
	outcomes := []types.Outcome{
		{ChunkIndex: 0, Status: types.StatusOk, Text: "first"},
		{ChunkIndex: 2, Status: types.StatusOk, Text: "third"},
	}

	_, err := Build(outcomes, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportIntegrity)
}

func TestBuild_DuplicateIndex(t *testing.T) {
	outcomes := []types.Outcome{
		{ChunkIndex: 0, Status: types.StatusOk, Text: "first"},
		{ChunkIndex: 0, Status: types.StatusOk, Text: "first again"},
	}

	_, err := Build(outcomes, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportIntegrity)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestBuild_IndexOutOfRange(t *testing.T) {
	outcomes := []types.Outcome{
		{ChunkIndex: 5, Status: types.StatusOk, Text: "stray"},
	}

	_, err := Build(outcomes, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportIntegrity)
}

func TestBuild_Empty(t *testing.T) {
	report, err := Build(nil, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, report.ChunkCount)
	assert.Empty(t, report.Outcomes)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScoreAndRemarks(t *testing.T) {
	score, remarks, err := parseScoreAndRemarks("Score: 85\nRemarks: Solid answer with minor omissions.")
	require.NoError(t, err)
	assert.Equal(t, 85, score)
	assert.Equal(t, "Solid answer with minor omissions.", remarks)
}

func TestParseScoreAndRemarksClampsRange(t *testing.T) {
	score, _, err := parseScoreAndRemarks("Score: 150\nRemarks: Over-enthusiastic grader.")
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	score, _, err = parseScoreAndRemarks("Score: -5\nRemarks: Harsh grader.")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestParseScoreAndRemarksTolerantFormatting(t *testing.T) {
	// Trailing period after the number and no remarks line.
	score, remarks, err := parseScoreAndRemarks("Score: 70.")
	require.NoError(t, err)
	assert.Equal(t, 70, score)
	assert.Empty(t, remarks)
}

func TestParseScoreAndRemarksRejectsGarbage(t *testing.T) {
	_, _, err := parseScoreAndRemarks("I would rate this a solid B+.")
	require.Error(t, err)

	_, _, err = parseScoreAndRemarks("Score: excellent\nRemarks: not a number")
	require.Error(t, err)
}

package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confpulse/pkg/contracts/domain"
)

func TestWriteJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "reports", "bundle.json")

	report := &domain.AnalysisReport{
		Abstract: &domain.NonAbstractSubmissionResults{
			CountryStats: domain.GroupedStats{"USA": 2},
		},
		SourceFile:  "submissions.csv",
		GeneratedAt: time.Now(),
	}

	require.NoError(t, WriteJSON(path, report))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "submissions.csv", decoded["source_file"])
	assert.NotEmpty(t, decoded["generated_at"])

	abstract, ok := decoded["abstractResults"].(map[string]interface{})
	require.True(t, ok)
	stats, ok := abstract["countryStats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), stats["USA"])

	// Reports not computed for this sheet stay out of the bundle.
	_, present := decoded["analyticsResults"]
	assert.False(t, present)

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUpdateIsEmpty(t *testing.T) {
	now := time.Now()
	status := StatusSuccess

	var nilUpdate *LogUpdate

	assert.True(t, nilUpdate.IsEmpty())
	assert.True(t, (&LogUpdate{}).IsEmpty())
	assert.False(t, (&LogUpdate{DownloadStartedAt: &now}).IsEmpty())
	assert.False(t, (&LogUpdate{Status: &status}).IsEmpty())
}

func TestAllStatuses(t *testing.T) {
	assert.Equal(t, []string{"in-progress", "success", "failed"}, AllStatuses())
}

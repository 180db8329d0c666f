package models_test

import (
	"strings"
	"testing"
	"time"

	"ecsite/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTimeRoundTrip(t *testing.T) {
	stored := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)

	display := models.ToDisplayTime(stored)
	assert.Equal(t, stored.Add(9*time.Hour), display)

	// Converting back must reproduce the stored timestamp exactly.
	assert.True(t, models.ToStorageTime(display).Equal(stored))
}

func TestStorageNowIsUTC(t *testing.T) {
	now := models.StorageNow()
	assert.Equal(t, time.UTC, now.Location())
}

func TestProductShortDescription(t *testing.T) {
	short := models.Product{Description: "a short description"}
	assert.Equal(t, "a short description", short.ShortDescription())

	long := models.Product{Description: strings.Repeat("x", 200)}
	assert.Equal(t, strings.Repeat("x", 70), long.ShortDescription())

	exact := models.Product{Description: strings.Repeat("y", 70)}
	assert.Equal(t, strings.Repeat("y", 70), exact.ShortDescription())

	// Truncation counts characters, not bytes.
	multibyte := models.Product{Description: strings.Repeat("あ", 100)}
	assert.Equal(t, strings.Repeat("あ", 70), multibyte.ShortDescription())
}

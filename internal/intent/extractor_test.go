package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexExtractor_Extract(t *testing.T) {
	e := NewRegexExtractor()

	t.Run("doctor and ISO date", func(t *testing.T) {
		entities := e.Extract("book with dr. Lee on 2024-05-01")
		require.NotNil(t, entities.DoctorName)
		require.NotNil(t, entities.Date)
		assert.Equal(t, "Lee", *entities.DoctorName)
		assert.Equal(t, "2024-05-01", *entities.Date)
	})

	t.Run("doctor without dot and relative date", func(t *testing.T) {
		entities := e.Extract("Book an appointment with Dr Smith tomorrow")
		require.NotNil(t, entities.DoctorName)
		require.NotNil(t, entities.Date)
		assert.Equal(t, "Smith", *entities.DoctorName)
		assert.Equal(t, "tomorrow", *entities.Date)
	})

	t.Run("nothing to extract", func(t *testing.T) {
		entities := e.Extract("book an appointment")
		assert.Nil(t, entities.DoctorName)
		assert.Nil(t, entities.Date)
	})

	t.Run("date only", func(t *testing.T) {
		entities := e.Extract("schedule an appt today")
		assert.Nil(t, entities.DoctorName)
		require.NotNil(t, entities.Date)
		assert.Equal(t, "today", *entities.Date)
	})

	t.Run("case insensitive", func(t *testing.T) {
		entities := e.Extract("WITH DR. PATEL TOMORROW")
		require.NotNil(t, entities.DoctorName)
		assert.Equal(t, "PATEL", *entities.DoctorName)
	})
}

//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/test/domain/entitybuilders"
)

func TestSelectOptions(t *testing.T) {
	t.Parallel()

	t.Run("should be interactive without requested packages", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectOptions{}

		// when
		nonInteractive := opts.IsNonInteractive()

		// then
		assert.False(t, nonInteractive)
		assert.False(t, opts.RequestsAll())
	})

	t.Run("should request all only for the single token all", func(t *testing.T) {
		t.Parallel()

		// given
		tests := []struct {
			requested []string
			expected  bool
		}{
			{requested: []string{"all"}, expected: true},
			{requested: []string{"all", "requests"}, expected: false},
			{requested: []string{"ALL"}, expected: false},
			{requested: []string{"requests"}, expected: false},
		}

		for _, tt := range tests {
			// when
			result := entities.SelectOptions{Requested: tt.requested}.RequestsAll()

			// then
			assert.Equal(t, tt.expected, result, "requested %v", tt.requested)
		}
	})

	t.Run("should match names ignoring case and surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectOptions{Requested: []string{"  Django "}}
		record := entitybuilders.NewPackageRecordBuilder().WithName("django").BuildPackageRecord()

		// when
		matches := opts.Matches(opts.Requested[0], record)

		// then
		assert.True(t, matches)
		assert.False(t, opts.Matches("djangorestframework", record))
	})
}

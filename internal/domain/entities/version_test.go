//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

func TestIsUpgradeAvailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{name: "newer semantic version", current: "1.0.0", latest: "2.0.0", expected: true},
		{name: "short semantic versions", current: "1.0", latest: "1.1", expected: true},
		{name: "same version", current: "2.31.0", latest: "2.31.0", expected: false},
		{name: "older latest version", current: "3.0.0", latest: "2.9.9", expected: false},
		{name: "v-prefixed versions", current: "v1.2.3", latest: "v1.2.4", expected: true},
		{name: "non-semantic versions differ", current: "1.0.post1", latest: "1.0.post2", expected: true},
		{name: "non-semantic versions equal", current: "2020.1", latest: "2020.1", expected: false},
		{name: "unknown latest version", current: "1.0.0", latest: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.IsUpgradeAvailable(tt.current, tt.latest)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

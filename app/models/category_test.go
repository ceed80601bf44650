package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingUnitLabel(t *testing.T) {
	service := Category{Key: "SERVICE", Unit: ServiceHours}
	chapter := Category{Key: "CHAPTER", Unit: EventCount}

	assert.Equal(t, "hrs", service.MissingUnit())
	assert.Equal(t, "events", chapter.MissingUnit())
}

func TestRequirementSetDefaultsToZero(t *testing.T) {
	rs := RequirementSet{
		{ClassType: NonGrad, CategoryID: 1}: 4,
	}

	assert.Equal(t, 4, rs.Required(NonGrad, 1))
	assert.Equal(t, 0, rs.Required(Senior, 1))
	assert.Equal(t, 0, rs.Required(NonGrad, 2))
}

func TestCompletionMapUsesCategoryUnit(t *testing.T) {
	m := CompletionMap{
		1: {Count: 3, ServiceHours: 5},
	}

	hours := Category{ID: 1, Unit: ServiceHours}
	count := Category{ID: 1, Unit: EventCount}

	assert.Equal(t, 5, m.Completed(&hours))
	assert.Equal(t, 3, m.Completed(&count))

	// Unknown category: all-zero tally, no error.
	missing := Category{ID: 9, Unit: EventCount}
	assert.Equal(t, 0, m.Completed(&missing))
}

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
)

func TestWorkplaceName(t *testing.T) {
	assert.NoError(t, WorkplaceName("Office"))
	assert.Error(t, WorkplaceName(""))
	assert.Error(t, WorkplaceName(strings.Repeat("x", MaxWorkplaceNameLength+1)))
}

func TestCoordinates(t *testing.T) {
	assert.NoError(t, Latitude(48.8566))
	assert.NoError(t, Latitude(-90))
	assert.Error(t, Latitude(90.01))
	assert.Error(t, Latitude(-100))

	assert.NoError(t, Longitude(2.3522))
	assert.NoError(t, Longitude(180))
	assert.Error(t, Longitude(-180.5))
}

func TestRadius(t *testing.T) {
	assert.NoError(t, Radius(100))
	assert.Error(t, Radius(0))
	assert.Error(t, Radius(-5))
	assert.Error(t, Radius(MaxRadiusMeters+1))
}

func TestWorkplace(t *testing.T) {
	w := model.NewWorkplace("Office", 48.8566, 2.3522, 100)
	assert.NoError(t, Workplace(w))

	bad := model.NewWorkplace("Office", 95, 2.3522, 100)
	err := Workplace(bad)
	assert.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.NotEmpty(t, errors.Suggestion(err))
}

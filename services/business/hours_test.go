package business

import (
	"testing"

	"marketdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateHours(t *testing.T) {
	valid := models.BusinessHours{
		"monday":   {Open: "09:00", Close: "17:30"},
		"saturday": {Open: "10:00", Close: "14:00"},
	}
	assert.NoError(t, ValidateHours(valid))

	// Closed days are omitted, so empty is fine.
	assert.NoError(t, ValidateHours(models.BusinessHours{}))

	assert.Error(t, ValidateHours(models.BusinessHours{
		"funday": {Open: "09:00", Close: "17:00"},
	}), "unknown weekday")

	assert.Error(t, ValidateHours(models.BusinessHours{
		"monday": {Open: "9am", Close: "17:00"},
	}), "malformed open time")

	assert.Error(t, ValidateHours(models.BusinessHours{
		"monday": {Open: "09:00", Close: "24:00"},
	}), "close out of range")

	assert.Error(t, ValidateHours(models.BusinessHours{
		"monday": {Open: "17:00", Close: "09:00"},
	}), "open after close")

	assert.Error(t, ValidateHours(models.BusinessHours{
		"monday": {Open: "09:00", Close: "09:00"},
	}), "zero-length window")
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFlip(t *testing.T) {
	assert.Equal(t, StatusAbsent, StatusPresent.Flip())
	assert.Equal(t, StatusPresent, StatusAbsent.Flip())
}

func TestContextValid(t *testing.T) {
	assert.True(t, ContextMandal.Valid())
	assert.True(t, ContextRaviSabha.Valid())
	assert.True(t, ContextYST.Valid())
	assert.False(t, AttendanceContext("weekly").Valid())
}

func TestEligibleMember(t *testing.T) {
	// Mandal sabha is open to every member; the shared gatherings need the
	// matching flag, so a non-member cannot be toggled into their records.
	assert.True(t, ContextMandal.EligibleMember(false, false))

	assert.True(t, ContextRaviSabha.EligibleMember(true, false))
	assert.False(t, ContextRaviSabha.EligibleMember(false, true))

	assert.True(t, ContextYST.EligibleMember(false, true))
	assert.False(t, ContextYST.EligibleMember(true, false))
}

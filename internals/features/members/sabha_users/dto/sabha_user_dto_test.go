package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	suModel "yuvasabha_backend/internals/features/members/sabha_users/model"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestApplyToModelPartialUpdate(t *testing.T) {
	father := "Ramesh"
	m := &suModel.SabhaUserModel{
		SabhaUserName:         "Kirtan",
		SabhaUserFatherName:   &father,
		SabhaUserMobileNumber: "9876543210",
		SabhaUserActiveStatus: true,
		SabhaUserIsYST:        true,
	}

	updater := uuid.New()
	req := UpdateSabhaUserRequest{
		SabhaUserName: strPtr("Kirtanbhai"),
	}
	req.ApplyToModel(m, updater)

	// Only the provided key changes; everything absent stays put.
	assert.Equal(t, "Kirtanbhai", m.SabhaUserName)
	assert.Equal(t, "Ramesh", *m.SabhaUserFatherName)
	assert.Equal(t, "9876543210", m.SabhaUserMobileNumber)
	assert.True(t, m.SabhaUserActiveStatus)
	assert.True(t, m.SabhaUserIsYST)
	assert.Equal(t, updater, *m.SabhaUserUpdatedBy)
}

func TestApplyToModelExplicitFalse(t *testing.T) {
	m := &suModel.SabhaUserModel{
		SabhaUserActiveStatus: true,
		SabhaUserIsYST:        true,
		SabhaUserIsRaviSabha:  true,
	}

	// An explicit false must overwrite, unlike an absent key.
	req := UpdateSabhaUserRequest{
		SabhaUserActiveStatus: boolPtr(false),
		SabhaUserIsYST:        boolPtr(false),
	}
	req.ApplyToModel(m, uuid.New())

	assert.False(t, m.SabhaUserActiveStatus)
	assert.False(t, m.SabhaUserIsYST)
	assert.True(t, m.SabhaUserIsRaviSabha)
}

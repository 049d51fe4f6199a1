package service

import (
	"testing"
	"time"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileLeavesDisplayNameAlone(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "Asha")

	resp, err := f.profiles.Update(1, dto.ProfileUpdateDTO{
		College: "AIIMS Delhi",
		Year:    "Final year",
		Status:  "preparing for NEET PG",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", resp.DisplayName)
	assert.Equal(t, "AIIMS Delhi", resp.College)
	assert.Nil(t, resp.LastNameChange, "editing other fields does not start the rename cooldown")
}

func TestDisplayNameFirstChangeIsAlwaysAllowed(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "Asha")

	resp, err := f.profiles.UpdateDisplayName(1, "Dr. Asha")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Asha", resp.DisplayName)
	require.NotNil(t, resp.LastNameChange)
	assert.WithinDuration(t, time.Now(), *resp.LastNameChange, time.Minute)
}

func TestDisplayNameChangeWithinCooldownIsRejected(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "Asha")
	lastChange := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, f.db.Model(&model.Profile{}).Where("id = ?", 1).Update("last_name_change", lastChange).Error)

	_, err := f.profiles.UpdateDisplayName(1, "Dr. Asha")
	assert.ErrorIs(t, err, ErrNameChangeTooSoon)

	// Nothing was written: name and cooldown stamp are untouched.
	resp, err := f.profiles.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Asha", resp.DisplayName)
	require.NotNil(t, resp.LastNameChange)
	assert.WithinDuration(t, lastChange, *resp.LastNameChange, time.Second)
}

func TestDisplayNameChangeAfterCooldownRestampsClock(t *testing.T) {
	f := newForumFixture(t)
	f.seedUser(t, 1, "Asha")
	lastChange := time.Now().Add(-61 * 24 * time.Hour)
	require.NoError(t, f.db.Model(&model.Profile{}).Where("id = ?", 1).Update("last_name_change", lastChange).Error)

	resp, err := f.profiles.UpdateDisplayName(1, "Dr. Asha")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Asha", resp.DisplayName)
	require.NotNil(t, resp.LastNameChange)
	assert.WithinDuration(t, time.Now(), *resp.LastNameChange, time.Minute)

	// Accepting the change restarts the 60-day window.
	_, err = f.profiles.UpdateDisplayName(1, "Dr. Asha again")
	assert.ErrorIs(t, err, ErrNameChangeTooSoon)
}

package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careboard/internal/domain"
)

type recordingHost struct {
	mounted  bool
	mounts   int
	unmounts int
	content  string
}

func (h *recordingHost) MountModal(content string) {
	h.mounted = true
	h.mounts++
	h.content = content
}

func (h *recordingHost) UnmountModal() {
	h.mounted = false
	h.unmounts++
}

func TestOpen_NamesTargetTypeAndIdentifier(t *testing.T) {
	h := &recordingHost{}
	d := Open(h, domain.EntityHospital, "12", "Apollo Hospitals", nil)

	require.True(t, h.mounted)
	assert.Contains(t, h.content, "hospital")
	assert.Contains(t, h.content, "#12")
	assert.Contains(t, h.content, "Apollo Hospitals")
	assert.True(t, d.IsOpen())
}

func TestConfirm_FiresCallbackOnceWithKey(t *testing.T) {
	h := &recordingHost{}
	var got []string
	d := Open(h, domain.EntityDoctor, "7", "Dr. Mehta", func(key string) { got = append(got, key) })

	d.ConfirmDelete()
	d.ConfirmDelete() // repeat confirms must not re-fire
	d.Cancel()

	assert.Equal(t, []string{"7"}, got)
	assert.False(t, d.IsOpen())
	assert.False(t, h.mounted, "modal torn down after confirm")
	assert.Equal(t, 1, h.unmounts)
}

func TestCancel_NeverInvokesCallback(t *testing.T) {
	h := &recordingHost{}
	fired := false
	d := Open(h, domain.EntityBooking, "3", "Booking #3", func(string) { fired = true })

	d.Cancel()
	d.ConfirmDelete() // confirm after close is a no-op

	assert.False(t, fired)
	assert.False(t, h.mounted)
}

func TestClose_OutsideDismissalTearsDown(t *testing.T) {
	h := &recordingHost{}
	fired := false
	d := Open(h, domain.EntityContact, "9", "Contact #9", func(string) { fired = true })

	d.Close()

	assert.False(t, fired)
	assert.False(t, d.IsOpen())
	assert.Equal(t, 1, h.mounts)
	assert.Equal(t, 1, h.unmounts, "exactly one unmount per lifecycle")
}

func TestNilCallbackIsSafe(t *testing.T) {
	d := Open(nil, domain.EntityTreatment, "1", "x", nil)
	assert.NotPanics(t, func() { d.ConfirmDelete() })
}

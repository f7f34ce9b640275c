package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextStartsUnknown(t *testing.T) {
	ctx := NewContext()
	snap := ctx.Snapshot()

	assert.Equal(t, LabelUnknown, snap.Label)
	assert.Equal(t, BodyPartUnknown, snap.BodyPart)
	assert.Zero(t, snap.Confidence)
	assert.Empty(t, snap.MedicalInfo)
	assert.False(t, ctx.IsInvalid())
}

func TestUpdateClearsCachedInfo(t *testing.T) {
	priors := []string{"", "Pneumonia is an infection of the lungs.", "cached text"}
	for _, prior := range priors {
		ctx := NewContext()
		ctx.Update("Pneumonia", 0.9, "Chest")
		ctx.CacheMedicalInfo(prior)

		ctx.Update("Tumor", 0.8, "Kidney")
		snap := ctx.Snapshot()

		assert.Empty(t, snap.MedicalInfo, "prior cache %q must be cleared", prior)
		assert.Equal(t, "Tumor", snap.Label)
		assert.Equal(t, 0.8, snap.Confidence)
		assert.Equal(t, "Kidney", snap.BodyPart)
	}
}

func TestDescription(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, "Unknown", ctx.Description())

	ctx.Update("Pneumonia", 0.9, "Chest")
	assert.Equal(t, "Pneumonia in Chest", ctx.Description())

	ctx.Update(LabelInvalidImage, 0.97, BodyPartUnknown)
	assert.Equal(t, LabelInvalidImage, ctx.Description())
}

func TestIsInvalidSentinels(t *testing.T) {
	cases := []struct {
		label   string
		invalid bool
	}{
		{LabelInvalidImage, true},
		{LabelNoAbnormalities, true},
		{LabelUnknown, false},
		{LabelUnknownBodyPart, false},
		{"Pneumonia", false},
		{"Normal Anatomy", false},
	}
	for _, tc := range cases {
		ctx := NewContext()
		ctx.Update(tc.label, 0.5, BodyPartUnknown)
		assert.Equal(t, tc.invalid, ctx.IsInvalid(), "label %q", tc.label)
	}
}

func TestStoreSessions(t *testing.T) {
	store := NewStore()

	id, ctx := store.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, ctx)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Same(t, ctx, got)

	sameID, sameCtx := store.GetOrCreate(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, ctx, sameCtx)

	newID, newCtx := store.GetOrCreate("no-such-session")
	assert.NotEqual(t, "no-such-session", newID)
	assert.NotSame(t, ctx, newCtx)
	assert.Equal(t, 2, store.Len())
}

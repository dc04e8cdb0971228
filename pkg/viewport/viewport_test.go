package viewport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/solaris/pkg/geo"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Pan: geo.Pt(-12.5, 40), Scale: 1.75}
	p := geo.Pt(321, 123)
	back := v.ToCanvas(v.ToScreen(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestIdentityIsNoop(t *testing.T) {
	p := geo.Pt(5, 7)
	assert.Equal(t, p, Identity().ToScreen(p))
	assert.True(t, Identity().IsIdentity(0))
}

func TestParseSelection(t *testing.T) {
	assert.True(t, ParseSelection("").IsNone())
	assert.True(t, ParseSelection("capital").IsCapital())

	sel := ParseSelection("aurora")
	id, ok := sel.RegionID()
	assert.True(t, ok)
	assert.Equal(t, "aurora", id)
	assert.Equal(t, KindRegion, sel.Kind())

	_, ok = Capital().RegionID()
	assert.False(t, ok)
	assert.Equal(t, None(), Region(""))
}

func TestSelectionJSON(t *testing.T) {
	type payload struct {
		Selected Selection `json:"selected"`
	}
	b, err := json.Marshal(payload{Selected: Region("nova")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"selected":"nova"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"selected":"capital"}`), &p))
	assert.Equal(t, Capital(), p.Selected)
}

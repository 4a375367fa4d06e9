package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantPosition_DecodesPageReport(t *testing.T) {
	raw := `{"id":"quadrant2","x":602,"y":0,"width":598.5,"height":448}`

	var pos QuadrantPosition
	require.NoError(t, json.Unmarshal([]byte(raw), &pos))

	assert.Equal(t, "quadrant2", pos.ID)
	assert.Equal(t, Rect{X: 602, Y: 0, Width: 598.5, Height: 448}, pos.Rect())
}

func TestPositionsFromRects(t *testing.T) {
	positions := PositionsFromRects(ComputeQuadrants(Size{Width: 100, Height: 80}))

	require.Len(t, positions, QuadrantCount)
	assert.Equal(t, "quadrant1", positions[0].ID)
	assert.Equal(t, "quadrant4", positions[3].ID)
	assert.Equal(t, Rect{X: 50, Y: 40, Width: 50, Height: 40}, positions[3].Rect())
}

func TestQuadURLs_JSONFieldNames(t *testing.T) {
	urls := QuadURLs{URL1: "a", URL2: "b", URL3: "c", URL4: "d"}

	data, err := json.Marshal(urls)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url1":"a","url2":"b","url3":"c","url4":"d"}`, string(data))
	assert.Equal(t, [QuadrantCount]string{"a", "b", "c", "d"}, urls.List())
}

func TestTargetTables(t *testing.T) {
	for i, target := range ProvisionTargets {
		assert.NotEmpty(t, target.URL, "provision target %d", i)
		assert.NotEmpty(t, target.Title, "provision target %d", i)
	}
	for i, target := range DirectTargets {
		assert.NotEmpty(t, target.URL, "direct target %d", i)
		assert.NotEmpty(t, target.Title, "direct target %d", i)
	}

	assert.Equal(t, "webview1", ProvisionedViewID(0))
	assert.Equal(t, "main4", DirectViewID(SlotBottomRight))
}

func TestLayoutMode_Valid(t *testing.T) {
	assert.True(t, LayoutModeScript.Valid())
	assert.True(t, LayoutModeDirect.Valid())
	assert.False(t, LayoutMode("tiled").Valid())
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramMarshalFlattensAttributes(t *testing.T) {
	p := Program{
		ID:    3,
		Name:  "Summer Camp",
		Price: "250",
		Image: "https://assets.example.com/images/camp.jpg",
		Attributes: map[string]string{
			"ages":     "5-12",
			"location": "Main Campus",
		},
	}

	buf, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf, &raw))

	assert.Equal(t, "Summer Camp", raw["programName"])
	assert.Equal(t, "5-12", raw["ages"])
	assert.Equal(t, "Main Campus", raw["location"])
	// No nested attribute object on the wire.
	_, ok := raw["attributes"]
	assert.False(t, ok)
	// Numeric price stays a JSON number.
	assert.Equal(t, float64(250), raw["price"])
}

func TestProgramMarshalNonNumericPrice(t *testing.T) {
	buf, err := json.Marshal(Program{Name: "Lessons", Price: "varies"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf, &raw))
	assert.Equal(t, "varies", raw["price"])
}

func TestProgramUnmarshalSplitsFixedKeys(t *testing.T) {
	src := `{
		"id": 7,
		"programName": "Piano",
		"price": 45,
		"image": "https://assets.example.com/images/piano.jpg",
		"ages": "6+",
		"classExperience": "All levels welcome",
		"sessionType": [{"name": "30 min", "price": "45"}]
	}`

	var p Program
	require.NoError(t, json.Unmarshal([]byte(src), &p))

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Piano", p.Name)
	assert.Equal(t, "45", p.Price)
	assert.Equal(t, "6+", p.Attributes["ages"])
	assert.Equal(t, "All levels welcome", p.Attributes["classExperience"])
	require.Len(t, p.SessionTypes, 1)
	assert.Equal(t, "30 min", p.SessionTypes[0].Name)
	// Fixed keys never leak into the attribute bag.
	_, ok := p.Attributes["programName"]
	assert.False(t, ok)
}

func TestProgramJSONRoundTrip(t *testing.T) {
	orig := Program{
		ID:         1,
		Name:       "After School",
		Price:      "199.50",
		Attributes: map[string]string{"dates": "Mon-Fri", "time": "3-6pm"},
		SessionTypes: []SessionOption{
			{Hours: "1", Price: "40"},
		},
	}

	buf, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Program
	require.NoError(t, json.Unmarshal(buf, &got))

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Name, got.Name)
	assert.Equal(t, orig.Price, got.Price)
	assert.Equal(t, orig.Attributes, got.Attributes)
	assert.Equal(t, orig.SessionTypes, got.SessionTypes)
}

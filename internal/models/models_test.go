package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelResponseMarshalsEmptyMeta(t *testing.T) {
	body, err := json.Marshal(SentinelResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"meta":{}}`, string(body))
}

func TestEmptySearchResponseMarshalsPopulatedMeta(t *testing.T) {
	body, err := json.Marshal(EmptySearchResponse())
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"data":[],"meta":{"total_count":0,"total_pages":0,"current_page":1}}`,
		string(body))
}

func TestNewListResponseMarshal(t *testing.T) {
	envelope := NewListResponse(
		[]Pokemon{{ID: 25, Name: "pikachu", Number: 25, Image: "http://img/25.png"}},
		Meta{TotalCount: 1302, TotalPages: 66, CurrentPage: 2},
	)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": [{"id":25,"name":"pikachu","number":25,"image":"http://img/25.png"}],
		"meta": {"total_count":1302,"total_pages":66,"current_page":2}
	}`, string(body))
}

func TestNewSearchResponseMarshal(t *testing.T) {
	envelope := NewSearchResponse(&PokemonDetail{
		Pokemon:   Pokemon{ID: 1, Name: "bulbasaur", Number: 1, Image: "http://img/1.png"},
		Types:     []string{"grass", "poison"},
		Weight:    6.9,
		Height:    0.7,
		Abilities: []string{"overgrow"},
		Stats:     map[string]int{StatHP: 45},
	})

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded struct {
		Data []map[string]any `json:"data"`
		Meta Meta             `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Len(t, decoded.Data, 1)
	assert.Equal(t, "bulbasaur", decoded.Data[0]["name"])
	assert.Equal(t, 6.9, decoded.Data[0]["weight"])
	assert.Equal(t, Meta{TotalCount: 1, TotalPages: 1, CurrentPage: 1}, decoded.Meta)
}

func TestNilDataMarshalsAsEmptyArray(t *testing.T) {
	body, err := json.Marshal(PagedResponse{Meta: &Meta{CurrentPage: 1}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"meta":{"total_count":0,"total_pages":0,"current_page":1}}`, string(body))
}

package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formRating struct {
	StoreID Int `json:"store_id" validate:"gte=1"`
	Rating  Int `json:"rating" validate:"min=1,max=5"`
}

type formOwner struct {
	StoreID Int `json:"store_id" validate:"omitempty,gte=1"`
}

func TestInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Int
	}{
		{name: "number", in: `3`, want: Int{Value: 3, Set: true}},
		{name: "string", in: `"3"`, want: Int{Value: 3, Set: true}},
		{name: "padded string", in: `" 12 "`, want: Int{Value: 12, Set: true}},
		{name: "negative", in: `"-1"`, want: Int{Value: -1, Set: true}},
		{name: "null", in: `null`, want: Int{}},
		{name: "empty string", in: `""`, want: Int{}},
		{name: "letters", in: `"x"`, want: Int{Set: true, Invalid: true}},
		{name: "fraction", in: `3.5`, want: Int{Set: true, Invalid: true}},
		{name: "bool", in: `true`, want: Int{Set: true, Invalid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Int
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt_Ptr(t *testing.T) {
	assert.Nil(t, Int{}.Ptr())

	ptr := Int{Value: 4, Set: true}.Ptr()
	require.NotNil(t, ptr)
	assert.Equal(t, int64(4), *ptr)
}

func TestValidate_IntFields(t *testing.T) {
	v := New()

	var ok formRating
	require.NoError(t, json.Unmarshal([]byte(`{"store_id":"3","rating":"5"}`), &ok))
	assert.NoError(t, v.Validate(&ok))

	var bad formRating
	require.NoError(t, json.Unmarshal([]byte(`{"store_id":"abc","rating":"x"}`), &bad))
	assert.Equal(t, map[string][]string{
		"store_id": {"Store ID must be a valid integer"},
		"rating":   {"Rating must be between 1 and 5"},
	}, messagesOf(t, v.Validate(&bad)))

	var missing formRating
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Equal(t, map[string][]string{
		"store_id": {"Store ID must be a valid integer"},
		"rating":   {"Rating must be between 1 and 5"},
	}, messagesOf(t, v.Validate(&missing)))
}

func TestValidate_OptionalIntField(t *testing.T) {
	v := New()

	var absent formOwner
	require.NoError(t, json.Unmarshal([]byte(`{"store_id":""}`), &absent))
	assert.NoError(t, v.Validate(&absent))

	var invalid formOwner
	require.NoError(t, json.Unmarshal([]byte(`{"store_id":"three"}`), &invalid))
	assert.Equal(t, map[string][]string{
		"store_id": {"Store ID must be a valid integer"},
	}, messagesOf(t, v.Validate(&invalid)))
}

func TestNewTypeError(t *testing.T) {
	assert.Equal(t, map[string][]string{
		"store_id": {"Store ID must be a valid integer"},
	}, messagesOf(t, NewTypeError("store_id")))
}

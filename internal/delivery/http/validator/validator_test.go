package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string  `json:"name" validate:"name_length"`
	Email    string  `json:"email" validate:"email"`
	Password string  `json:"password" validate:"password_length,password_strength"`
	Address  *string `json:"address" validate:"omitempty,max=400"`
}

type rate struct {
	StoreID int64 `json:"store_id" validate:"gte=1"`
	Rating  int   `json:"rating" validate:"min=1,max=5"`
}

func messagesOf(t *testing.T, err error) map[string][]string {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	out := make(map[string][]string)
	for _, f := range verr.Fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}

	return out
}

func TestValidate_AcceptsValidSignup(t *testing.T) {
	v := New()

	err := v.Validate(&signup{
		Name:     "Alexandra Montgomery Smith",
		Email:    "alex@example.com",
		Password: "Valid1!Pass",
	})

	assert.NoError(t, err)
}

func TestValidate_WeakPasswordReportsStrengthRule(t *testing.T) {
	v := New()

	err := v.Validate(&signup{
		Name:     "Alexandra Montgomery Smith",
		Email:    "alex@example.com",
		Password: "alllowercase1",
	})

	msgs := messagesOf(t, err)
	assert.Equal(t, []string{"Password must contain at least one uppercase letter and one special character"}, msgs["password"])
	assert.NotContains(t, msgs, "name")
}

func TestValidate_CollectsEveryFailure(t *testing.T) {
	v := New()
	long := strings.Repeat("a", 401)

	err := v.Validate(&signup{
		Name:     "  Too Short  ",
		Email:    "not-an-email",
		Password: "short",
		Address:  &long,
	})

	msgs := messagesOf(t, err)
	assert.Equal(t, []string{"Name must be between 20 and 60 characters"}, msgs["name"])
	assert.Equal(t, []string{"Please provide a valid email address"}, msgs["email"])
	assert.Equal(t, []string{
		"Password must be between 8 and 16 characters",
		"Password must contain at least one uppercase letter and one special character",
	}, msgs["password"])
	assert.Equal(t, []string{"Address must not exceed 400 characters"}, msgs["address"])
}

func TestValidate_NameIsTrimmedAndCountedInRunes(t *testing.T) {
	v := New()

	// 20 runes, 40 bytes.
	name := strings.Repeat("é", 20)
	err := v.Validate(&signup{Name: "   " + name + "   ", Email: "a@b.co", Password: "Valid1!Pass"})

	assert.NoError(t, err)
}

func TestValidate_RatingBounds(t *testing.T) {
	v := New()

	for _, value := range []int{0, 6} {
		msgs := messagesOf(t, v.Validate(&rate{StoreID: 1, Rating: value}))
		assert.Equal(t, []string{"Rating must be between 1 and 5"}, msgs["rating"], "rating %d", value)
	}

	for value := 1; value <= 5; value++ {
		assert.NoError(t, v.Validate(&rate{StoreID: 1, Rating: value}))
	}

	msgs := messagesOf(t, v.Validate(&rate{StoreID: 0, Rating: 3}))
	assert.Equal(t, []string{"Store ID must be a valid integer"}, msgs["store_id"])
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Valid1!Pass"))
	assert.True(t, IsStrongPassword(`A\`))
	assert.False(t, IsStrongPassword("NoSpecial1"))
	assert.False(t, IsStrongPassword("nouppercase!"))
}

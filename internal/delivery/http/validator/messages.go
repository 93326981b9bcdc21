package validator

import "strings"

// fieldMessages overrides the message of a rule on a specific field.
var fieldMessages = map[string]string{
	"name.not_blank":           "Store name is required",
	"name.max":                 "Store name must not exceed 255 characters",
	"address.max":              "Address must not exceed 400 characters",
	"currentPassword.required": "Current password is required",
	"store_id.required":        "Store ID must be a valid integer",
	"store_id.gte":             "Store ID must be a valid integer",
	"store_id.int":             "Store ID must be a valid integer",
	"store_id.type":            "Store ID must be a valid integer",
	"rating.int":               "Rating must be between 1 and 5",
	"rating.type":              "Rating must be between 1 and 5",
	"rating.required":          "Rating must be between 1 and 5",
	"rating.min":               "Rating must be between 1 and 5",
	"rating.max":               "Rating must be between 1 and 5",
}

// ruleMessages is the message of a rule regardless of the field.
var ruleMessages = map[string]string{
	"name_length":       "Name must be between 20 and 60 characters",
	"email":             "Please provide a valid email address",
	"password_length":   "Password must be between 8 and 16 characters",
	"password_strength": "Password must contain at least one uppercase letter and one special character",
	"required":          "This field is required",
	"not_blank":         "This field is required",
	"max":               "Value is too long",
	"min":               "Value is too small",
	"gte":               "Value is too small",
	"int":               "Must be a valid integer",
	"type":              "Invalid value type",
}

func messageFor(field, rule string) string {
	name, _, _ := strings.Cut(rule, "=")

	if msg, ok := fieldMessages[field+"."+name]; ok {
		return msg
	}
	if msg, ok := ruleMessages[name]; ok {
		return msg
	}

	return "Invalid value"
}

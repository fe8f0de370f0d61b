package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"numeric":  "must be a number",
	"hexadecimal": "must be a hexadecimal string",
	"len":      "must be %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

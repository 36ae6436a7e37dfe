package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/logger"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // Expected type: string, number, boolean, uuid
	MinLength     int                     // Minimum length for strings
	MaxLength     int                     // Maximum length for strings
	Pattern       string                  // Regex pattern for validation
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	AllowedValues []string                // List of allowed values
	Sanitize      bool                    // Whether to sanitize the input
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

// ValidationError describes one failed field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidateInput creates a validation middleware with the given configuration
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 && c.Request.ContentLength > config.MaxBodySize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
			})
			c.Abort()
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid JSON in request body",
			})
			c.Abort()
			return
		}

		errors := validateFields(body, config.Rules, config.AllowUnknownFields)
		if len(errors) > 0 {
			c.JSON(http.StatusBadRequest, ValidationErrors{Errors: errors})
			c.Abort()
			return
		}

		// Store validated body back to context for handler use
		bodyBytes, _ := json.Marshal(body)
		c.Set("validatedBody", body)
		c.Request.Body = newBodyReader(bodyBytes)

		c.Next()
	}
}

// ValidateQueryParams creates validation for URL query parameters. Numeric
// looking values are parsed as numbers so numeric rules apply.
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		errors := validateFields(params, config.Rules, config.AllowUnknownFields)
		if len(errors) > 0 {
			if logger.Log != nil {
				logger.Log.Debug("Query validation failed",
					zap.String("path", c.Request.URL.Path),
					zap.Any("errors", errors),
				)
			}
			c.JSON(http.StatusBadRequest, ValidationErrors{Errors: errors})
			c.Abort()
			return
		}

		c.Set("validatedQuery", params)
		c.Next()
	}
}

// validateFields validates the fields according to the rules
func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errors []ValidationError
	validatedFields := make(map[string]bool)

	for _, rule := range rules {
		validatedFields[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || value == "") {
			errors = append(errors, ValidationError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s is required", rule.Field),
			})
			continue
		}

		if !exists || value == nil {
			continue
		}

		switch rule.Type {
		case "string":
			err := validateString(value, rule)
			if err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			} else if rule.Sanitize {
				if strVal, ok := value.(string); ok {
					data[rule.Field] = sanitizeString(strVal)
				}
			}

		case "number", "int", "float":
			if err := validateNumber(value, rule); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "boolean", "bool":
			if _, ok := value.(bool); !ok {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: "must be a boolean",
				})
			}

		case "uuid":
			if err := validateUUID(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}

		case "array":
			if _, ok := value.([]interface{}); !ok {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: "must be an array",
				})
			}

		case "object":
			if _, ok := value.(map[string]interface{}); !ok {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: "must be an object",
				})
			}
		}

		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: err.Error(),
				})
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !validatedFields[field] {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: "unknown field",
				})
			}
		}
	}

	return errors
}

// String validation
func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(str)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}

	if rule.Pattern != "" {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			logger.Log.Error("Invalid regex pattern", zap.String("pattern", rule.Pattern), zap.Error(err))
			return fmt.Errorf("invalid validation pattern")
		}
		if !regex.MatchString(str) {
			return fmt.Errorf("invalid format")
		}
	}

	if len(rule.AllowedValues) > 0 {
		allowed := false
		for _, v := range rule.AllowedValues {
			if str == v {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
		}
	}

	return nil
}

// Number validation
func validateNumber(value interface{}, rule ValidationRule) error {
	var num float64
	switch v := value.(type) {
	case float64:
		num = v
	case int:
		num = float64(v)
	case int64:
		num = float64(v)
	default:
		return fmt.Errorf("must be a number")
	}

	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}

	return nil
}

// UUID validation
func validateUUID(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}

	return nil
}

// sanitizeString removes potentially dangerous characters from strings
func sanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	input = strings.TrimSpace(input)

	replacements := map[string]string{
		"<":  "&lt;",
		">":  "&gt;",
		"&":  "&amp;",
		"\"": "&quot;",
		"'":  "&#x27;",
		"/":  "&#x2F;",
	}
	for old, new := range replacements {
		input = strings.ReplaceAll(input, old, new)
	}

	return input
}

// bodyReader implements io.ReadCloser so the validated body can be re-read
// by handlers after the middleware consumed it.
type bodyReader struct {
	*bytes.Reader
}

func newBodyReader(body []byte) io.ReadCloser {
	return &bodyReader{Reader: bytes.NewReader(body)}
}

func (r *bodyReader) Close() error {
	return nil
}

// Helper function to create float64 pointer
func float64Ptr(f float64) *float64 {
	return &f
}

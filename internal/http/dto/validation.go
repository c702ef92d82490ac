package dto

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) ToMap() map[string]string {
	return map[string]string{e.Field: e.Message}
}

func ToMap(errs []ValidationError) map[string]string {
	result := make(map[string]string)
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func validateRequired(field, value string) []ValidationError {
	if strings.TrimSpace(value) == "" {
		return []ValidationError{{Field: field, Message: field + " is required"}}
	}
	return nil
}

func validateEmail(email string) []ValidationError {
	if email != "" && !emailRegex.MatchString(email) {
		return []ValidationError{{Field: "email", Message: "Invalid email format"}}
	}
	return nil
}

func validateReleaseDate(field string, releaseDate *string) []ValidationError {
	var errs []ValidationError
	if releaseDate != nil && *releaseDate != "" {
		if !dateRegex.MatchString(*releaseDate) {
			errs = append(errs, ValidationError{Field: field, Message: "invalid date format (expected: YYYY-MM-DD)"})
		}
	}
	return errs
}

func validateURL(field string, urlVal *string) []ValidationError {
	var errs []ValidationError
	if urlVal != nil && *urlVal != "" {
		u, err := url.ParseRequestURI(*urlVal)
		if err != nil || u.Host == "" {
			errs = append(errs, ValidationError{Field: field, Message: "invalid URL format"})
		}
	}
	return errs
}

func validateTrackCount(trackCount *int) []ValidationError {
	var errs []ValidationError
	if trackCount != nil {
		if *trackCount < 0 || *trackCount > 999 {
			errs = append(errs, ValidationError{Field: "track_count", Message: "must be between 0 and 999"})
		}
	}
	return errs
}

func validateSocialLinks(links *string) []ValidationError {
	var errs []ValidationError
	if links != nil && *links != "" {
		var parsed map[string]string
		if err := json.Unmarshal([]byte(*links), &parsed); err != nil {
			errs = append(errs, ValidationError{Field: "social_links", Message: "must be a JSON object of platform to URL"})
		}
	}
	return errs
}

package validate

import (
	"regexp"
	"strings"
	"time"

	"boardhub/app/apperr"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email trims and lowercases the address so lookups are case-insensitive,
// then checks the shape. The normalized form is what gets stored.
func Email(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperr.Validation("email is required")
	}
	if !emailRe.MatchString(email) {
		return "", apperr.Validation("invalid email format")
	}
	return strings.ToLower(email), nil
}

func Password(password string) (string, error) {
	if password == "" {
		return "", apperr.Validation("password is required")
	}
	if len(password) < 8 {
		return "", apperr.Validation("password must be at least 8 characters long")
	}
	var upper, lower, digit bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	if !upper {
		return "", apperr.Validation("password must contain at least one uppercase letter")
	}
	if !lower {
		return "", apperr.Validation("password must contain at least one lowercase letter")
	}
	if !digit {
		return "", apperr.Validation("password must contain at least one number")
	}
	return password, nil
}

func DisplayName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("display name is required")
	}
	if len(name) < 2 {
		return "", apperr.Validation("display name must be at least 2 characters long")
	}
	if len(name) > 50 {
		return "", apperr.Validation("display name must be less than 50 characters")
	}
	return name, nil
}

// DateOfBirth parses YYYY-MM-DD and enforces a derived age of 13..120 years.
func DateOfBirth(dob string) (time.Time, error) {
	if dob == "" {
		return time.Time{}, apperr.Validation("date of birth is required")
	}
	d, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date format, use YYYY-MM-DD")
	}
	age := ageAt(d, time.Now())
	if age < 13 {
		return time.Time{}, apperr.Validation("must be at least 13 years old")
	}
	if age > 120 {
		return time.Time{}, apperr.Validation("invalid date of birth")
	}
	return d, nil
}

func BoardName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 100 {
		return "", apperr.Validation("board name must be between 3 and 100 characters")
	}
	return name, nil
}

func MessageText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < 1 {
		return "", apperr.Validation("message text is required")
	}
	if len(text) > 1000 {
		return "", apperr.Validation("message text must be less than 1000 characters")
	}
	return text, nil
}

// Age derives the current age from a date of birth, accounting for whether
// the birthday has occurred yet this year.
func Age(dob time.Time) int { return ageAt(dob, time.Now()) }

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// Package validation holds the pure field validators for public and admin
// payloads. Every function returns a field→message map; an empty map means
// the input is acceptable.
package validation

import (
	"regexp"
	"strings"
)

const minMessageLength = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)

type ContactFormInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func ContactForm(in ContactFormInput) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Email is invalid"
	}

	if strings.TrimSpace(in.Subject) == "" {
		errs["subject"] = "Subject is required"
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		errs["message"] = "Message is required"
	} else if len(message) < minMessageLength {
		errs["message"] = "Message must be at least 10 characters"
	}

	return errs
}

type ProjectInput struct {
	Title           string
	Description     string
	FullDescription string
	Thumbnail       string
	Category        string
	Technologies    []string
}

// ProjectRecord checks the required project fields. Technologies must be a
// list; it may be empty here — the admin UI enforces non-emptiness as a
// product rule, not the API.
func ProjectRecord(in ProjectInput) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(in.FullDescription) == "" {
		errs["fullDescription"] = "Full description is required"
	}
	if strings.TrimSpace(in.Thumbnail) == "" {
		errs["thumbnail"] = "Thumbnail is required"
	}
	if strings.TrimSpace(in.Category) == "" {
		errs["category"] = "Category is required"
	}
	if in.Technologies == nil {
		errs["technologies"] = "Technologies must be a list"
	}

	return errs
}

package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLead checks a lead arriving over the API. The id may still be
// empty here; the save path assigns one before the write.
func ValidateLead(l *entity.Lead) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(l.CompanyName) == "" {
		errs = append(errs, ValidationError{"companyName", "is required"})
	}

	if l.EmailCompany != "" && l.EmailCompany != "onbekend" {
		if _, err := mail.ParseAddress(l.EmailCompany); err != nil {
			errs = append(errs, ValidationError{"emailCompany", "is invalid"})
		}
	}

	if l.Website != "" && strings.ContainsAny(l.Website, " \t") {
		errs = append(errs, ValidationError{"website", "must not contain whitespace"})
	}

	return errs
}

func ValidateConfig(c *entity.UserConfig) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, ValidationError{"username", "is required"})
	}

	return errs
}

func joinValidationErrors(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

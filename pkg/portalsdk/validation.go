package portalsdk

import (
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
	MaxNameLength     = 100
	MaxAvatarLength   = 2048

	// ReasonRequired marks a field that was missing or blank.
	ReasonRequired = "required"
)

// Validate checks that both login fields are present. The email is not
// checked for shape; an address with no account is an authentication
// failure, not a validation one.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = ReasonRequired
	}
	if r.Password == "" {
		errs["password"] = ReasonRequired
	}

	return nilIfEmpty(errs)
}

// Validate checks the password change fields.
func (r ChangePasswordRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.UserID <= 0 {
		errs["userId"] = ReasonRequired
	}

	if r.CurrentPassword == "" {
		errs["currentPassword"] = ReasonRequired
	}

	n := utf8.RuneCountInString(r.NewPassword)
	switch {
	case r.NewPassword == "":
		errs["newPassword"] = ReasonRequired
	case n < MinPasswordLength:
		errs["newPassword"] = "too short (min 6)"
	case n > MaxPasswordLength:
		errs["newPassword"] = "too long (max 128)"
	}

	if r.ConfirmPassword != "" && r.ConfirmPassword != r.NewPassword {
		errs["confirmPassword"] = "does not match newPassword"
	}

	return nilIfEmpty(errs)
}

// Validate checks the profile fields.
func (r UpdateProfileRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateName(errs, "name", r.Name)
	validateName(errs, "artistName", r.ArtistName)

	// Any string is accepted as an avatar reference; only its size is bounded.
	if utf8.RuneCountInString(r.Avatar) > MaxAvatarLength {
		errs["avatar"] = "too long (max 2048)"
	}

	return nilIfEmpty(errs)
}

func validateName(errs map[string]string, field, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		errs[field] = ReasonRequired
	case utf8.RuneCountInString(value) > MaxNameLength:
		errs[field] = "too long (max 100)"
	}
}

func nilIfEmpty(errs map[string]string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

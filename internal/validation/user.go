package validation

import "github.com/dailydiet/daily-diet-api/internal/dto"

// CreateUser enforces the registration contract: username and email are both
// required and the email must be well-formed.
func CreateUser(req *dto.CreateUserRequest) error {
	var missing []string
	if req.Username == nil {
		missing = append(missing, "username")
	}
	if req.Email == nil {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return missingProperties(missing)
	}
	if !validEmail(*req.Email) {
		return errorf("body must send a valid email address")
	}
	return nil
}

// UpdateUser allows both fields to be absent; a present email must still be
// well-formed.
func UpdateUser(req *dto.UpdateUserRequest) error {
	if req.Email != nil && !validEmail(*req.Email) {
		return errorf("body must send a valid email address")
	}
	return nil
}

package commands

import "github.com/pixil98/go-adventure/internal/messages"

// UserError is a corrective message for the player. It answers bad input
// and never ends the session.
type UserError struct {
	Key     messages.Key
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// renderUserError renders key from catalog as a UserError. Rendering
// failures come back as plain errors so they are not mistaken for player
// mistakes.
func renderUserError(catalog *messages.Catalog, key messages.Key, data any) error {
	msg, err := catalog.Render(key, data)
	if err != nil {
		return err
	}
	return &UserError{Key: key, Message: msg}
}

package application

import (
	"errors"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
)

// canonicalID parses raw and returns its canonical form, the one the stores
// are keyed by. Parse failures are reported against field.
func canonicalID(raw, field string) (string, error) {
	id, err := entity.ParseID(raw)
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			return "", &entity.ValidationError{Field: field, Reason: ve.Reason}
		}
		return "", err
	}
	return id.String(), nil
}

package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// Decoder reads JSON request bodies into payload structs and validates the
// ones implementing validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validate(object)
}

func validate(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

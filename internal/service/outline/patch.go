package outline

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"plotline/internal/httputil"
)

// applyString overwrites a nullable string column when the patch field was
// present. Present-with-null clears the column; absent leaves it alone.
func applyString(dst **string, o httputil.OptionalString) {
	if o.Present {
		*dst = o.Value
	}
}

// applyInt is the integer counterpart of applyString
func applyInt(dst **int, o httputil.OptionalInt) {
	if o.Present {
		*dst = o.Value
	}
}

// validatePatchString checks a present non-null patch field against a length
// cap, so updates cannot store values create would reject
func validatePatchString(field string, o httputil.OptionalString, max int) error {
	if !o.Present || o.Value == nil {
		return nil
	}
	if err := validation.Validate(*o.Value, validation.Length(0, max)); err != nil {
		return fmt.Errorf("%s: %v", field, err)
	}
	return nil
}

// validatePatchMin is the integer counterpart of validatePatchString
func validatePatchMin(field string, o httputil.OptionalInt, min int) error {
	if !o.Present || o.Value == nil {
		return nil
	}
	if err := validation.Validate(*o.Value, validation.Min(min)); err != nil {
		return fmt.Errorf("%s: %v", field, err)
	}
	return nil
}

// firstError returns the first non-nil error from a validation pass
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

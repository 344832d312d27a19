package fouryousee

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field names in errors follow
// the JSON names the API uses.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// validateStruct checks s against its validate tags and reports the first
// failing field
func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "unknown", Tag: "unknown", Message: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Tag:     fe.Tag(),
		Message: translateError(fe),
		Err:     err,
	}
}

// translateError converts a validator.FieldError to a readable message
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing '%s' field", field)
	case "oneof":
		return fmt.Sprintf("invalid %s field, must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("invalid %s field, must hold at least %s entries", field, fe.Param())
	case "len":
		return fmt.Sprintf("invalid %s field, must hold %s entries", field, fe.Param())
	case "eq":
		return fmt.Sprintf("invalid %s field, must be %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("invalid %s field, must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("invalid %s field, must be at least %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("invalid %s field, must match the layout %s", field, fe.Param())
	default:
		return fmt.Sprintf("invalid %s field", field)
	}
}

var (
	supportedMediaTypes = map[string]bool{
		mimeMP4:  true,
		mimeJPEG: true,
		mimePNG:  true,
		mimeZip:  true,
	}
	// still images and zip packages have no intrinsic length
	durationRequired = map[string]bool{
		mimeJPEG: true,
		mimePNG:  true,
		mimeZip:  true,
	}
)

// validateMedia runs the media checks and returns the resolved file
func validateMedia(in MediaInput) (uploadFile, error) {
	if err := validateStruct(in); err != nil {
		return uploadFile{}, err
	}

	file, err := resolveUpload(in.File)
	if err != nil {
		return uploadFile{}, err
	}

	if !supportedMediaTypes[file.mimeType] {
		return uploadFile{}, &ValidationError{
			Field:   "file",
			Tag:     "mimetype",
			Message: fmt.Sprintf("invalid file %s: type %s is not supported", in.File, file.mimeType),
		}
	}

	if durationRequired[file.mimeType] && in.Duration <= 0 {
		return uploadFile{}, &ValidationError{
			Field:   "duration",
			Tag:     "required",
			Message: "missing 'duration' field, it must be the number of seconds the file stays on screen in the playlist",
		}
	}

	return file, nil
}

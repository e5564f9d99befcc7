package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// minCells is the smallest world side: a wall ring plus a 3x3 interior.
const minCells = 5

// validate checks the per-field `validate` tags. Field names in its errors
// are the yaml keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration describes a playable world.
func (c Snake) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return invalid("%v", err)
	}

	w := c.World
	if w.WindowSize%w.BlockSize != 0 {
		return invalid("world.window_size %d is not a multiple of block_size %d", w.WindowSize, w.BlockSize)
	}
	if w.Cells() < minCells {
		return invalid("world must be at least %d cells wide, got %d", minCells, w.Cells())
	}

	// The body trails behind the head; the tail must stay off the wall ring.
	tail := w.Center() + (c.Start.Length-1)*w.BlockSize
	if c.Start.Direction == "down" || c.Start.Direction == "right" {
		tail = w.Center() - (c.Start.Length-1)*w.BlockSize
	}
	if tail < w.BlockSize || tail > w.Max()-w.BlockSize {
		return invalid("start.length %d does not fit between the center and the wall", c.Start.Length)
	}

	return nil
}

// fieldError describes a failed field tag using the yaml path of the field.
func fieldError(fe validator.FieldError) error {
	path := strings.TrimPrefix(fe.Namespace(), "Snake.")
	switch fe.Tag() {
	case "gt":
		return invalid("%s must be greater than %s, got %v", path, fe.Param(), fe.Value())
	case "min":
		return invalid("%s must be at least %s, got %v", path, fe.Param(), fe.Value())
	case "oneof":
		return invalid("%s %q is not one of %s", path, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return invalid("%s failed %q check", path, fe.Tag())
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

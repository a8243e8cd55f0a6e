package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// fieldSetter validates a raw JSON value and stores it on target
type fieldSetter[T any] func(target *T, raw interface{}) error

// fieldTable maps patchable JSON field names to their setters
type fieldTable[T any] map[string]fieldSetter[T]

// apply runs the setter of every recognised key in name order and reports
// whether anything was set. Unrecognised keys are ignored. On error target
// may be partially modified, so callers patch a copy.
func (t fieldTable[T]) apply(target *T, fields map[string]interface{}) (bool, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := t[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := t[k](target, fields[k]); err != nil {
			return false, err
		}
	}
	return len(keys) > 0, nil
}

func stringField[T any](name string, ref func(*T) *string) fieldSetter[T] {
	return func(target *T, raw interface{}) error {
		s, ok := raw.(string)
		if !ok {
			return apperrors.NewValidationError(name, name+" must be a string")
		}
		if err := validation.NotBlank(name, s); err != nil {
			return err
		}
		*ref(target) = strings.TrimSpace(s)
		return nil
	}
}

func stringListField[T any](name string, ref func(*T) *[]string) fieldSetter[T] {
	return func(target *T, raw interface{}) error {
		var items []interface{}
		switch v := raw.(type) {
		case []interface{}:
			items = v
		case []string:
			for _, s := range v {
				items = append(items, s)
			}
		default:
			return apperrors.NewValidationError(name, name+" must be a list of strings")
		}

		if len(items) == 0 {
			return apperrors.NewValidationError(name, name+" must contain at least one value")
		}

		values := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return apperrors.NewValidationError(name, name+" must be a list of strings")
			}
			if strings.TrimSpace(s) == "" {
				field := name + "[" + strconv.Itoa(i) + "]"
				return apperrors.NewValidationError(field, field+" must not be blank")
			}
			values = append(values, strings.TrimSpace(s))
		}
		*ref(target) = values
		return nil
	}
}

var coursePatchFields = fieldTable[models.Course]{
	"name":        stringField("name", func(c *models.Course) *string { return &c.Name }),
	"description": stringField("description", func(c *models.Course) *string { return &c.Description }),
	"board":       stringField("board", func(c *models.Course) *string { return &c.Board }),
	"grade":       stringField("grade", func(c *models.Course) *string { return &c.Grade }),
	"subject":     stringField("subject", func(c *models.Course) *string { return &c.Subject }),
	"medium":      stringListField("medium", func(c *models.Course) *[]string { return &c.Medium }),
}

var unitPatchFields = fieldTable[models.Unit]{
	"title":   stringField("title", func(u *models.Unit) *string { return &u.Title }),
	"content": stringField("content", func(u *models.Unit) *string { return &u.Content }),
}

// SPDX-License-Identifier: MIT

package card

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

// newValidator reports fields by their YAML keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// check runs the struct tags and flattens validator errors into ErrInvalid.
func check(card interface{}) error {
	err := validate.Struct(card)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Namespace() + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), ErrInvalid)
}

// decode reads exactly one YAML document with unknown keys rejected.
func decode(r io.Reader, out interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document: %w", ErrDecode)
		}
		return fmt.Errorf("%v: %w", err, ErrDecode)
	}
	var extra interface{}
	if err := dec.Decode(&extra); err == nil {
		return fmt.Errorf("multiple documents: %w", ErrDecode)
	} else if !errors.Is(err, io.EOF) {
		return fmt.Errorf("%v: %w", err, ErrDecode)
	}

	return nil
}

// LoadTheory decodes and validates a theory card.
func LoadTheory(r io.Reader) (*Theory, error) {
	var t Theory
	if err := decode(r, &t); err != nil {
		return nil, fmt.Errorf("LoadTheory: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("LoadTheory: %w", err)
	}

	return &t, nil
}

// LoadOperator decodes and validates an operator card.
func LoadOperator(r io.Reader) (*Operator, error) {
	var o Operator
	if err := decode(r, &o); err != nil {
		return nil, fmt.Errorf("LoadOperator: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("LoadOperator: %w", err)
	}

	return &o, nil
}

// LoadTheoryFile is LoadTheory on a file.
func LoadTheoryFile(path string) (*Theory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTheoryFile: %w", err)
	}

	return LoadTheory(bytes.NewReader(data))
}

// LoadOperatorFile is LoadOperator on a file.
func LoadOperatorFile(path string) (*Operator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadOperatorFile: %w", err)
	}

	return LoadOperator(bytes.NewReader(data))
}

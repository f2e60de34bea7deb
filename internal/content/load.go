package content

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Source loads a Site.
type Source interface {
	Load(ctx context.Context) (*Site, error)
}

// Embedded is the Source compiled into the binary.
type Embedded struct{}

// Load parses the embedded site.yaml.
func (Embedded) Load(context.Context) (*Site, error) {
	return Parse(defaultSite)
}

// File is a Source backed by a YAML file on disk.
type File struct {
	Path string
}

// Load reads and parses the file.
func (f File) Load(context.Context) (*Site, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, f.Path)
		}
		return nil, fmt.Errorf("content: read %s: %w", f.Path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return site, nil
}

// Default returns the embedded site.
func Default() (*Site, error) {
	return Embedded{}.Load(context.Background())
}

// Parse decodes a YAML document and validates it. Unknown keys are rejected
// so typos in the content file surface at startup.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("content: parse yaml: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks required fields, URL shapes and id uniqueness.
func Validate(site *Site) error {
	if site == nil {
		return fmt.Errorf("%w: nil site", ErrInvalid)
	}
	err := validate.Struct(site)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Site.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "unique":
		return field + " has duplicate " + fe.Param() + " values"
	case "url", "email":
		return fmt.Sprintf("%s is not a valid %s: %q", field, fe.Tag(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

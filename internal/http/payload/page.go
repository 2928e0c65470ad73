package payload

import (
	"fmt"
	"net/url"
	"sqlapp/internal/core"
	"strconv"

	"github.com/jellydator/validation"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type PageRequest struct {
	Skip  int
	Limit int
}

// ParsePage reads skip and limit from the query string, falling back to
// skip=0 and limit=100 when a parameter is absent.
func ParsePage(values url.Values) (PageRequest, error) {
	page := PageRequest{Skip: 0, Limit: DefaultLimit}

	var err error
	if raw := values.Get("skip"); raw != "" {
		if page.Skip, err = strconv.Atoi(raw); err != nil {
			return PageRequest{}, fmt.Errorf("parse skip: %w", err)
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if page.Limit, err = strconv.Atoi(raw); err != nil {
			return PageRequest{}, fmt.Errorf("parse limit: %w", err)
		}
	}

	if err := page.Validate(); err != nil {
		return PageRequest{}, fmt.Errorf("validating paging: %w", err)
	}
	return page, nil
}

func (p PageRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Skip, validation.Min(0)),
		validation.Field(&p.Limit, validation.Min(0), validation.Max(MaxLimit)),
	)
}

func (p PageRequest) ToCorePage() core.Page {
	return core.Page{
		Skip:  p.Skip,
		Limit: p.Limit,
	}
}

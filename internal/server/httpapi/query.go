package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
)

// Accepted created_after / created_before layouts. Values without a zone
// are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func parseTime(name, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s must be an ISO 8601 timestamp", common.ErrValidation, name)
}

func listRequestFromQuery(q url.Values) (*api.ListAssetsRequest, error) {
	req := &api.ListAssetsRequest{
		OwnerID: q.Get("owner_id"),
		Cursor:  q.Get("cursor"),
	}

	var err error
	if req.CreatedAfter, err = parseTime("created_after", q.Get("created_after")); err != nil {
		return nil, err
	}
	if req.CreatedBefore, err = parseTime("created_before", q.Get("created_before")); err != nil {
		return nil, err
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: limit must be an integer", common.ErrValidation)
		}
		req.Limit = &n
	}
	return req, nil
}

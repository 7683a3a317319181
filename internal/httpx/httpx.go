package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	ErrInvalidJSON   = errors.New("invalid json")
	ErrBodyTooLarge  = errors.New("request body too large")
	errTrailingValue = errors.New("body must contain a single JSON object")
)

// DecodeJSON reads a single JSON object of at most limit bytes into v. An
// empty body leaves v untouched so required-field checks report it. Unknown
// fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return classify(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return classify(err)
		}
		return errors.Join(ErrInvalidJSON, errTrailingValue)
	}
	return nil
}

func classify(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrBodyTooLarge
	}
	return errors.Join(ErrInvalidJSON, err)
}

// ParseID parses a base-10 path id. ok is false when raw is not an integer;
// such ids match no record.
func ParseID(raw string) (id int, ok bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

// PathParam returns the percent-decoded value of a chi route parameter. chi
// matches on the escaped path whenever the request carries one, so its raw
// params can still hold %XX sequences. Undecodable values are returned as is.
func PathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

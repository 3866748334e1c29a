package countries

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Component serves the directory as JSON dropdown options. A request with
// ?code= returns that single country; otherwise ?q= and ?limit= search the
// directory.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Path returns the route the component answers on under basePath.
func (c *Component) Path(basePath string) string {
	route := "/" + strings.TrimLeft(strings.TrimSpace(c.opts.RoutePath), "/")
	base := strings.Trim(strings.TrimSpace(basePath), "/")
	if base == "" {
		return route
	}
	return "/" + base + route
}

// Mount registers the handler on mux under basePath and returns the pattern.
func (c *Component) Mount(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", errors.New("countries: missing mux")
	}
	pattern := c.Path(basePath)
	mux.Handle(pattern, c)
	return pattern, nil
}

type optionsResponse struct {
	Data []Option `json:"data"`
}

func (c *Component) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	var results []Option
	if code := strings.TrimSpace(query.Get(c.opts.CodeParam)); code != "" {
		country, ok := c.lookup(code)
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		option := ToOption(country)
		option.Selected = country.Code == c.opts.Selected
		results = []Option{option}
	} else {
		limit, _ := strconv.Atoi(query.Get(c.opts.LimitParam))
		results = SearchOptions(c.opts.directory(), query.Get(c.opts.SearchParam), limit, c.opts)
	}
	if results == nil {
		results = []Option{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(optionsResponse{Data: results})
}

func (c *Component) lookup(code string) (Country, bool) {
	code = strings.ToUpper(code)
	for _, country := range c.opts.directory() {
		if country.Code == code {
			return country, true
		}
	}
	return Country{}, false
}

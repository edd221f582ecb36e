package filter

import (
	"net/url"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
)

// A Navigator receives the query after every filter mutation, so the
// shareable location can follow the filter state.
type Navigator interface {
	Navigate(url.Values)
}

type NavigatorFunc func(url.Values)

func (f NavigatorFunc) Navigate(q url.Values) { f(q) }

// A Source returns the products a query lists before filtering.
type Source func(url.Values) []domain.Product

// A Result is the outcome of one recompute.
type Result struct {
	State    domain.FilterState
	Query    url.Values
	Products []domain.Product
}

type Opt func(*Engine)

func WithNavigator(n Navigator) Opt {
	return func(e *Engine) {
		if n != nil {
			e.nav = n
		}
	}
}

// WithQuery sets the initial query. Defaults to an empty query.
func WithQuery(q url.Values) Opt {
	return func(e *Engine) {
		e.query = cloneValues(q)
	}
}

// An Engine keeps the filter state, its query representation and the
// filtered products in sync. It is not safe for concurrent use.
type Engine struct {
	source    Source
	nav       Navigator
	state     domain.FilterState
	query     url.Values
	products  []domain.Product
	listeners map[int]func(Result)
	nextID    int
}

func NewEngine(source Source, opts ...Opt) *Engine {
	e := &Engine{
		source:    source,
		nav:       NavigatorFunc(func(url.Values) {}),
		query:     url.Values{},
		listeners: make(map[int]func(Result)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load(e.query)
	return e
}

// StaticSource lists the same products for every query.
func StaticSource(products []domain.Product) Source {
	products = slices.Clone(products)
	return func(url.Values) []domain.Product { return products }
}

// Navigate handles an external location change: the state is derived
// from q and the products are recomputed. The navigator is not called.
func (e *Engine) Navigate(q url.Values) {
	e.load(q)
	e.notify()
}

func (e *Engine) SetCategory(slug string) {
	e.state.Category = slug
	e.mutate()
}

// ToggleCategory selects the category, or clears it when it is the
// active one.
func (e *Engine) ToggleCategory(slug string) {
	if e.state.Category == slug {
		slug = ""
	}
	e.SetCategory(slug)
}

func (e *Engine) SetSort(o domain.SortOption) {
	e.state.Sort = domain.ParseSortOption(string(o))
	e.mutate()
}

func (e *Engine) ClearSort() {
	e.SetSort(domain.SortNewest)
}

func (e *Engine) SetPriceRange(r domain.PriceRange) {
	e.state.PriceRange = r.Normalize()
	e.mutate()
}

// ClearAll drops the category and price filters. The sort is kept.
func (e *Engine) ClearAll() {
	e.state.Category = ""
	e.state.PriceRange = domain.DefaultPriceRange()
	e.mutate()
}

// Subscribe registers fn to be called after every recompute. The
// returned func detaches it.
func (e *Engine) Subscribe(fn func(Result)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() { delete(e.listeners, id) }
}

func (e *Engine) State() domain.FilterState {
	return e.state
}

func (e *Engine) Query() url.Values {
	return cloneValues(e.query)
}

func (e *Engine) Products() []domain.Product {
	return slices.Clone(e.products)
}

func (e *Engine) Result() Result {
	return Result{
		State:    e.State(),
		Query:    e.Query(),
		Products: e.Products(),
	}
}

func (e *Engine) load(q url.Values) {
	e.state = QueryToFilterState(q)
	e.query = FilterStateToQuery(e.state, q)
	e.recompute()
}

func (e *Engine) mutate() {
	e.query = FilterStateToQuery(e.state, e.query)
	e.recompute()
	e.nav.Navigate(e.Query())
	e.notify()
}

func (e *Engine) recompute() {
	var products []domain.Product
	if e.source != nil {
		products = e.source(e.query)
	}
	e.products = Apply(products, e.state)
}

func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	r := e.Result()
	for _, fn := range e.listeners {
		fn(r)
	}
}

package carousel

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

const (
	StripFeatured    = "featured"
	StripSports      = "sports"
	StripBestsellers = "bestsellers"

	stripSize = 12
)

var ErrUnknownStrip = errorString("unknown carousel")

type errorString string

func (e errorString) Error() string { return string(e) }

type ProductSource func(ctx context.Context) []models.Product

type strip struct {
	ctrl  *Controller
	items []models.Product
}

// Strips owns the named product carousels shown on the storefront.
type Strips struct {
	mu     sync.RWMutex
	strips map[string]*strip
	source ProductSource
}

func NewStrips(source ProductSource, visible int, interval time.Duration, newTicker TickerFactory) *Strips {
	s := &Strips{strips: make(map[string]*strip), source: source}

	for _, name := range []string{StripFeatured, StripSports, StripBestsellers} {
		s.strips[name] = &strip{ctrl: NewController(0, Options{
			Visible:      visible,
			Interval:     interval,
			PauseOnHover: name == StripFeatured,
			NewTicker:    newTicker,
		})}
	}

	return s
}

// Refresh reloads the products behind every strip.
func (s *Strips) Refresh(ctx context.Context) {
	products := s.source(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, st := range s.strips {
		st.items = pick(name, products)
		st.ctrl.SetItemCount(len(st.items))
	}
}

func (s *Strips) Start() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.strips {
		st.ctrl.Start()
	}
}

func (s *Strips) Stop() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.strips {
		st.ctrl.Stop()
	}
}

func (s *Strips) State(name string) (*models.CarouselState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.strips[name]
	if !ok {
		return nil, ErrUnknownStrip
	}

	return &models.CarouselState{
		Name:     name,
		Index:    st.ctrl.Index(),
		MaxIndex: st.ctrl.MaxIndex(),
		Visible:  st.ctrl.visible,
		Paused:   st.ctrl.Paused(),
		Items:    st.items,
	}, nil
}

// Apply runs a navigation or pause action on a strip. index is only read by "goto".
func (s *Strips) Apply(name, action string, index int) (*models.CarouselState, error) {
	s.mu.RLock()
	st, ok := s.strips[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownStrip
	}

	switch action {
	case "next":
		st.ctrl.Next()
	case "prev":
		st.ctrl.Prev()
	case "goto":
		st.ctrl.GoTo(index)
	case "hover":
		st.ctrl.Hover(true)
	case "leave":
		st.ctrl.Hover(false)
	case "touchstart":
		st.ctrl.Touch(true)
	case "touchend":
		st.ctrl.Touch(false)
	default:
		return nil, errorString("unknown carousel action " + action)
	}

	return s.State(name)
}

func pick(name string, products []models.Product) []models.Product {
	switch name {
	case StripSports:
		seen := make(map[string]bool)
		out := make([]models.Product, 0, stripSize)

		for _, p := range products {
			if p.SportID == "" || seen[p.SportID] {
				continue
			}

			seen[p.SportID] = true
			out = append(out, p)
		}

		return out
	case StripBestsellers:
		out := slices.Clone(products)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(votes(b), votes(a))
		})

		return out[:min(len(out), stripSize)]
	default:
		out := make([]models.Product, 0, stripSize)

		for _, p := range products {
			if p.Available {
				out = append(out, p)
			}

			if len(out) == stripSize {
				break
			}
		}

		return out
	}
}

func votes(p models.Product) int {
	if p.Votes == nil {
		return 0
	}

	return *p.Votes
}

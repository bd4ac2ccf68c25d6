package recipe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/ggpipe"
	"github.com/gogpu/ggpipe/filter"
)

// Params holds numeric filter parameters by name.
type Params map[string]float64

// Float returns the parameter key, or def when it is not set.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Constructor builds a new processor from parameters. Every call must
// return an independent processor.
type Constructor func(Params) (ggpipe.Processor, error)

// Entry describes a named filter.
type Entry struct {
	// Name is the registry key.
	Name string

	// Primary is the parameter the shorthand "name:value" sets.
	// Empty when the filter takes no parameters.
	Primary string

	// Doc is a one-line description.
	Doc string

	// New builds the filter.
	New Constructor
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Entry{}
)

// Register adds or replaces a named filter.
func Register(e Entry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	e.Name = strings.ToLower(e.Name)
	registry[e.Name] = e
}

// Lookup returns the filter registered under name.
func Lookup(name string) (Entry, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: unknown filter %q", ggpipe.ErrConfiguration, name)
	}
	return e, nil
}

// Entries returns every registered filter, sorted by name.
func Entries() []Entry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// New builds the filter registered under name.
func New(name string, params Params) (ggpipe.Processor, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	p, err := e.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: filter %s: %w", ggpipe.ErrConfiguration, e.Name, err)
	}
	return p, nil
}

// FromSpec builds a filter from the shorthand "name" or "name:value",
// where value sets the filter's primary parameter ("brightness:1.4").
func FromSpec(spec string) (ggpipe.Processor, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(spec), ":")
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	params := Params{}
	if hasArg {
		if e.Primary == "" {
			return nil, fmt.Errorf("%w: filter %s takes no argument", ggpipe.ErrConfiguration, e.Name)
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: filter %s: %w", ggpipe.ErrConfiguration, e.Name, err)
		}
		params[e.Primary] = v
	}
	return New(e.Name, params)
}

// FactoryFromSpec is FromSpec as a fork default. The spec is checked once
// up front.
func FactoryFromSpec(spec string) (ggpipe.Factory, error) {
	if _, err := FromSpec(spec); err != nil {
		return nil, err
	}
	return func() ggpipe.Processor {
		p, _ := FromSpec(spec)
		return p
	}, nil
}

func matrix(build func(factor float32) *filter.ColorMatrix, def float64) Constructor {
	return func(p Params) (ggpipe.Processor, error) {
		return build(float32(p.Float("factor", def))), nil
	}
}

func fixed(build func() ggpipe.Processor) Constructor {
	return func(Params) (ggpipe.Processor, error) {
		return build(), nil
	}
}

func init() {
	for _, e := range []Entry{
		{Name: "noop", Doc: "pass the image through", New: fixed(func() ggpipe.Processor { return ggpipe.NoOp{} })},
		{Name: "threshold", Primary: "level", Doc: "bilevel threshold", New: func(p Params) (ggpipe.Processor, error) {
			m := filter.NewThresholdMatrix(p.Float("level", filter.DefaultThreshold))
			return &m, nil
		}},
		{Name: "atkinson", Primary: "level", Doc: "Atkinson error-diffusion dither", New: func(p Params) (ggpipe.Processor, error) {
			return &filter.Atkinson{ThresholdMatrix: filter.NewThresholdMatrix(p.Float("level", filter.DefaultThreshold))}, nil
		}},
		{Name: "floyd-steinberg", Primary: "level", Doc: "Floyd-Steinberg error-diffusion dither", New: func(p Params) (ggpipe.Processor, error) {
			return &filter.FloydSteinberg{ThresholdMatrix: filter.NewThresholdMatrix(p.Float("level", filter.DefaultThreshold))}, nil
		}},
		{Name: "brightness", Primary: "factor", Doc: "scale brightness (1 = unchanged)", New: matrix(filter.NewBrightness, 1)},
		{Name: "contrast", Primary: "factor", Doc: "scale contrast around mid-gray", New: matrix(filter.NewContrast, 1)},
		{Name: "saturation", Primary: "factor", Doc: "scale saturation (0 = gray)", New: matrix(filter.NewSaturation, 1)},
		{Name: "opacity", Primary: "factor", Doc: "scale alpha", New: matrix(filter.NewOpacity, 1)},
		{Name: "grayscale", Doc: "desaturate", New: fixed(func() ggpipe.Processor { return filter.NewGrayscale() })},
		{Name: "invert", Doc: "invert colors", New: fixed(func() ggpipe.Processor { return filter.NewInvert() })},
		{Name: "sepia", Doc: "sepia tone", New: fixed(func() ggpipe.Processor { return filter.NewSepia() })},
		{Name: "autocontrast", Primary: "cutoff", Doc: "stretch channel histograms", New: func(p Params) (ggpipe.Processor, error) {
			a := filter.AutoContrast{Cutoff: p.Float("cutoff", 0)}
			if a.Cutoff < 0 || a.Cutoff >= 50 {
				return nil, fmt.Errorf("%w: cutoff %v outside [0, 50)", filter.ErrInvalidParameter, a.Cutoff)
			}
			return a, nil
		}},
		{Name: "blur", Primary: "radius", Doc: "Gaussian blur", New: func(p Params) (ggpipe.Processor, error) {
			r := p.Float("radius", 1)
			if r < 0 {
				return nil, fmt.Errorf("%w: blur radius %v", filter.ErrInvalidParameter, r)
			}
			return filter.NewGaussianBlur(r), nil
		}},
		{Name: "gcr", Primary: "percent", Doc: "CMYK separation with gray-component replacement", New: func(p Params) (ggpipe.Processor, error) {
			g, err := filter.NewGCR(p.Float("percent", filter.DefaultGCRPercent))
			if err != nil {
				return nil, err
			}
			return g, nil
		}},
	} {
		Register(e)
	}

	inks := []ggpipe.Ink{
		ggpipe.InkWhite, ggpipe.InkCyan, ggpipe.InkMagenta, ggpipe.InkYellow,
		ggpipe.InkKey, ggpipe.InkRed, ggpipe.InkGreen, ggpipe.InkBlue,
	}
	for _, ink := range inks {
		Register(Entry{
			Name: strings.ToLower(ink.String()),
			Doc:  "colorize in " + ink.String() + " ink on white",
			New:  fixed(func() ggpipe.Processor { return ink }),
		})
	}
}

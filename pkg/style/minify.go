package style

import (
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns the configured CSS minifier.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/css", css.Minify)
	})
	return minifier
}

// renderMinified runs the joined rules through the CSS minifier. If
// minification fails the unminified text is returned instead.
func (s *Sheet) renderMinified() string {
	raw := strings.Join(append(append([]string{}, s.Rules...), s.Keyframes...), "\n")
	minified, err := getMinifier().String("text/css", raw)
	if err != nil {
		return raw
	}
	return minified
}

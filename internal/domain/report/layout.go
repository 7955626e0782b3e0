package report

import "errors"

// ErrRender is returned by renderers when a block list cannot be turned into a document.
var ErrRender = errors.New("report render failed")

// Margins in millimetres.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Layout holds the page parameters handed to a renderer together with the blocks.
type Layout struct {
	PageSize   string
	Margins    Margins
	Title      string
	Author     string
	FooterText string
}

// DefaultLayout is A4 portrait with 2 cm margins.
func DefaultLayout() Layout {
	return Layout{
		PageSize: "A4",
		Margins:  Margins{Left: 20, Top: 20, Right: 20, Bottom: 20},
		Author:   "MotoManager",
	}
}

package steg

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNoDocument is returned when the archive does not contain the main
// document part.
var ErrNoDocument = errors.New("word/document.xml not found in archive")

const documentPart = "word/document.xml"

// Run is one styled text run from the document. SizePt is the font size
// in points, rounded to one decimal; 0 means the run carries no explicit
// size.
type Run struct {
	Text   string
	SizePt float64
}

// WordprocessingML subset: paragraphs hold runs, a run holds optional
// properties (with the size in half-points) and text elements.
type wmlDocument struct {
	Body struct {
		Paragraphs []wmlParagraph `xml:"p"`
	} `xml:"body"`
}

type wmlParagraph struct {
	Runs []wmlRun `xml:"r"`
}

type wmlRun struct {
	Size  *wmlSize `xml:"rPr>sz"`
	Texts []string `xml:"t"`
}

type wmlSize struct {
	Val string `xml:"val,attr"`
}

// ReadRunsFromFile opens a .docx file and returns its text runs in
// document order. Runs with empty text are dropped.
func ReadRunsFromFile(path string) ([]Run, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	return ReadRuns(&zr.Reader)
}

// ReadRuns extracts text runs from an already opened .docx archive.
func ReadRuns(zr *zip.Reader) ([]Run, error) {
	var part io.ReadCloser
	for _, f := range zr.File {
		if f.Name == documentPart {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w", documentPart, err)
			}
			part = rc
			break
		}
	}
	if part == nil {
		return nil, ErrNoDocument
	}
	defer part.Close()

	var doc wmlDocument
	if err := xml.NewDecoder(part).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
	}

	var runs []Run
	for _, p := range doc.Body.Paragraphs {
		for _, r := range p.Runs {
			text := ""
			for _, t := range r.Texts {
				text += t
			}
			if text == "" {
				continue
			}

			size := 0.0
			if r.Size != nil {
				halfPoints, err := strconv.ParseFloat(r.Size.Val, 64)
				if err != nil {
					return nil, fmt.Errorf("parsing font size %q: %w", r.Size.Val, err)
				}
				// w:sz stores half-points.
				size = roundTenth(halfPoints / 2)
			}

			runs = append(runs, Run{Text: text, SizePt: size})
		}
	}
	return runs, nil
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

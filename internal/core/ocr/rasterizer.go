package ocr

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// probePDF is a one-page, empty 72x72 pt PDF.
var probePDF = assemblePDF(
	"<</Type/Catalog/Pages 2 0 R>>",
	"<</Type/Pages/Kids[3 0 R]/Count 1>>",
	"<</Type/Page/Parent 2 0 R/MediaBox[0 0 72 72]>>",
)

// assemblePDF numbers objects from 1 in order, with object 1 as the catalog,
// and writes a cross-reference table so MuPDF opens it without repair.
func assemblePDF(objects ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// FitzRasterizer renders PDF pages with MuPDF through go-fitz.
type FitzRasterizer struct {
	dpi float64
}

var _ Rasterizer = (*FitzRasterizer)(nil)

// NewFitzRasterizer creates a rasterizer rendering at Scale × BaseDPI.
func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{dpi: BaseDPI * Scale}
}

// Open opens the PDF at path. The caller must Close the returned PageSet.
func (r *FitzRasterizer) Open(path string) (PageSet, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf for rasterization: %w", err)
	}
	return &fitzPages{doc: doc, dpi: r.dpi}, nil
}

func (r *FitzRasterizer) Probe() error {
	doc, err := fitz.NewFromMemory(probePDF)
	if err != nil {
		return fmt.Errorf("open probe document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() != 1 {
		return fmt.Errorf("probe document: expected 1 page, got %d", doc.NumPage())
	}
	if _, err := doc.ImageDPI(0, r.dpi); err != nil {
		return fmt.Errorf("render probe page: %w", err)
	}
	return nil
}

type fitzPages struct {
	doc *fitz.Document
	dpi float64
}

func (p *fitzPages) NumPage() int { return p.doc.NumPage() }

func (p *fitzPages) Render(page int) ([]byte, error) {
	img, err := p.doc.ImageDPI(page, p.dpi)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", page+1, err)
	}
	return encodePNG(img)
}

func (p *fitzPages) Close() error {
	return p.doc.Close()
}

package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // template decoding
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	fontSize = 96 // points, fixed for all templates

	// Names longer than maxNameRunes are cut to truncatedRunes plus an
	// ellipsis marker so text cannot overflow fixed-size templates.
	maxNameRunes   = 40
	truncatedRunes = 37

	// Rendered pixels are mapped to PDF points at 100 DPI.
	pdfDPI = 100
)

var unsafePathChars = regexp.MustCompile(`[<>:"/\\|?*\t\n\r]`)

// Point is the placement of the name's top-left corner on the template,
// in template pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Request describes one certificate render.
type Request struct {
	Name         string // recipient display name
	TemplatePath string // PNG or JPEG template image
	FontPath     string // TrueType font asset
	Point        Point  // name placement
	Token        string // unique per-row token keyed into the output filename
}

// Renderer composites recipient names onto certificate templates and writes
// single-page PDFs into its output directory.
type Renderer struct {
	outDir string
}

// NewRenderer creates a renderer writing into outDir.
func NewRenderer(outDir string) *Renderer {
	return &Renderer{outDir: outDir}
}

// Render produces one certificate PDF and returns its path.
// The same request always produces the same composited pixels.
func (r *Renderer) Render(req Request) (string, error) {
	face, err := loadFace(req.FontPath)
	if err != nil {
		return "", err
	}
	defer face.Close()

	canvas, err := flattenTemplate(req.TemplatePath)
	if err != nil {
		return "", err
	}

	drawName(canvas, face, req.Name, req.Point)

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", errors.Join(ErrOutputWrite, err)
	}

	outPath := filepath.Join(r.outDir, outputName(req.Name, req.Token))
	if err := writePDF(canvas, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

func loadFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFontLoad, err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Join(ErrFontLoad, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Join(ErrFontLoad, err)
	}
	return face, nil
}

// flattenTemplate decodes the template and composites it over an opaque
// white canvas, discarding any alpha channel.
func flattenTemplate(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrTemplateOpen, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Join(ErrTemplateOpen, err)
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Over)
	return canvas, nil
}

func drawName(canvas *image.RGBA, face font.Face, name string, p Point) {
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: face,
		// Point addresses the top-left corner of the text; the drawer's
		// origin is the baseline, so shift down by the face ascent.
		Dot: fixed.Point26_6{
			X: floatToFixed(p.X),
			Y: floatToFixed(p.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(truncateName(name))
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// truncateName bounds the drawn text so it cannot overflow the template.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameRunes {
		return name
	}
	return string(runes[:truncatedRunes]) + "..."
}

// outputName builds a filesystem-safe output filename keyed on the sanitized
// display name and the per-row token.
func outputName(name, token string) string {
	safe := strings.TrimSpace(unsafePathChars.ReplaceAllString(name, "_"))
	if safe == "" {
		safe = "certificate"
	}
	if token == "" {
		return safe + ".pdf"
	}
	return fmt.Sprintf("%s-%s.pdf", safe, token)
}

// writePDF embeds the canvas into a single-page PDF sized to the image and
// writes it atomically (temp file + rename).
func writePDF(canvas *image.RGBA, outPath string) error {
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, canvas); err != nil {
		return errors.Join(ErrOutputWrite, err)
	}

	bounds := canvas.Bounds()
	widthPt := float64(bounds.Dx()) * 72 / pdfDPI
	heightPt := float64(bounds.Dy()) * 72 / pdfDPI

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: widthPt, Ht: heightPt},
	})
	// Fixed dates keep renders reproducible: the same inputs always
	// produce byte-identical output.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate", opts, &pngBuf)
	pdf.ImageOptions("certificate", 0, 0, widthPt, heightPt, false, opts, 0, "")

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".cert-*.tmp")
	if err != nil {
		return errors.Join(ErrOutputWrite, err)
	}
	tmpPath := tmp.Name()

	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Join(ErrOutputWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Join(ErrOutputWrite, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return errors.Join(ErrOutputWrite, err)
	}
	return nil
}

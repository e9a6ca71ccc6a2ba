package printing

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// PDFExporter renders assembled pages into a single PDF document, one page
// per student with a forced page break between them. Every page is emitted at
// the template's exact canvas width x height (1 canvas pixel = 1 pt), with no
// viewport-fit scaling.
type PDFExporter struct {
	w io.Writer
	// imageSeq disambiguates registered image names within this document.
	imageSeq int
}

func NewPDFExporter(w io.Writer) *PDFExporter {
	return &PDFExporter{w: w}
}

func (e *PDFExporter) Export(ctx context.Context, pages []Page) error {
	if len(pages) == 0 {
		return nil
	}

	size := gofpdf.SizeType{Wd: float64(pages[0].Width), Ht: float64(pages[0].Height)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: float64(page.Width), Ht: float64(page.Height)})
		for _, el := range page.Elements {
			switch el.Kind {
			case core.KindText:
				drawText(pdf, el)
			case core.KindImage, core.KindWatermark:
				e.drawImage(pdf, el)
			}
		}
	}

	if err := pdf.Output(e.w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawText(pdf *gofpdf.Fpdf, el core.Element) {
	style := el.Style
	fontSize := style.FontSize
	if fontSize <= 0 {
		fontSize = 16
	}
	lineHeight := style.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}

	pdf.SetFont(coreFont(style.FontFamily), fontStyleStr(style), fontSize)
	r, g, b := parseHexColor(style.Color)
	pdf.SetTextColor(r, g, b)
	setAlpha(pdf, style.Opacity)

	pdf.SetXY(el.X, el.Y)
	pdf.MultiCell(el.Width, fontSize*lineHeight, el.Content, "", alignStr(style.TextAlign), false)

	setAlpha(pdf, 1)
}

func (e *PDFExporter) drawImage(pdf *gofpdf.Fpdf, el core.Element) {
	data, imageType, err := decodeImageData(el.Content)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"element_id": el.ID,
			"error":      err,
		}).Warn("Skipping image element with unreadable data")
		return
	}

	e.imageSeq++
	name := fmt.Sprintf("element-%s-%d", el.ID, e.imageSeq)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))

	setAlpha(pdf, el.Style.Opacity)
	pdf.ImageOptions(name, el.X, el.Y, el.Width, el.Height, false, opts, 0, "")
	setAlpha(pdf, 1)
}

// decodeImageData accepts a data URL ("data:image/png;base64,....") or a bare
// base64 payload and returns the raw bytes plus the gofpdf image type.
func decodeImageData(content string) ([]byte, string, error) {
	payload := content
	imageType := ""
	if strings.HasPrefix(content, "data:") {
		comma := strings.Index(content, ",")
		if comma < 0 {
			return nil, "", fmt.Errorf("malformed data url")
		}
		header := content[:comma]
		payload = content[comma+1:]
		switch {
		case strings.Contains(header, "image/png"):
			imageType = "PNG"
		case strings.Contains(header, "image/jpeg"), strings.Contains(header, "image/jpg"):
			imageType = "JPEG"
		case strings.Contains(header, "image/gif"):
			imageType = "GIF"
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode image data: %w", err)
	}
	if imageType == "" {
		imageType = sniffImageType(data)
	}
	if imageType == "" {
		return nil, "", fmt.Errorf("unsupported image format")
	}
	return data, imageType, nil
}

func sniffImageType(data []byte) string {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return "PNG"
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "JPEG"
	case len(data) >= 3 && data[0] == 'G' && data[1] == 'I' && data[2] == 'F':
		return "GIF"
	}
	return ""
}

func setAlpha(pdf *gofpdf.Fpdf, opacity float64) {
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	pdf.SetAlpha(opacity, "Normal")
}

// coreFont maps a CSS-ish font family onto the PDF core fonts.
func coreFont(family string) string {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "times"), strings.Contains(f, "serif") && !strings.Contains(f, "sans"):
		return "Times"
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return "Courier"
	default:
		return "Helvetica"
	}
}

func fontStyleStr(style core.Style) string {
	var s string
	if strings.EqualFold(style.FontWeight, "bold") {
		s += "B"
	}
	if strings.EqualFold(style.FontStyle, "italic") {
		s += "I"
	}
	if strings.EqualFold(style.TextDecoration, "underline") {
		s += "U"
	}
	return s
}

func alignStr(textAlign string) string {
	switch strings.ToLower(textAlign) {
	case "center":
		return "C"
	case "right":
		return "R"
	default:
		return "L"
	}
}

// parseHexColor reads "#RRGGBB" (or "#RGB"); anything else is black.
func parseHexColor(c string) (int, int, int) {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	switch len(c) {
	case 6:
		r, okR := hexByte(c[0:2])
		g, okG := hexByte(c[2:4])
		b, okB := hexByte(c[4:6])
		if okR && okG && okB {
			return r, g, b
		}
	case 3:
		r, okR := hexByte(string([]byte{c[0], c[0]}))
		g, okG := hexByte(string([]byte{c[1], c[1]}))
		b, okB := hexByte(string([]byte{c[2], c[2]}))
		if okR && okG && okB {
			return r, g, b
		}
	}
	return 0, 0, 0
}

func hexByte(s string) (int, bool) {
	v := 0
	for _, ch := range s {
		v *= 16
		switch {
		case ch >= '0' && ch <= '9':
			v += int(ch - '0')
		case ch >= 'a' && ch <= 'f':
			v += int(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			v += int(ch-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLogo draws an image with upper half blocks: each cell shows two
// vertically stacked pixels, the top as foreground and the bottom as
// background. The image is scaled to width columns and width/2 rows.
func renderLogo(data []byte, width int) (string, error) {
	if len(data) == 0 || width <= 0 {
		return "", nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}

	b := img.Bounds()
	if b.Empty() {
		return "", nil
	}
	rows := max(width/2, 1)
	pxH := rows * 2

	sample := func(x, y int) (lipgloss.Color, bool) {
		sx := b.Min.X + x*b.Dx()/width
		sy := b.Min.Y + y*b.Dy()/pxH
		r, g, bl, a := img.At(sx, sy).RGBA()
		if a < 0x8000 {
			return "", false
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)), true
	}

	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for col := 0; col < width; col++ {
			top, topOK := sample(col, row*2)
			bottom, bottomOK := sample(col, row*2+1)

			style := lipgloss.NewStyle()
			switch {
			case topOK && bottomOK:
				sb.WriteString(style.Foreground(top).Background(bottom).Render("▀"))
			case topOK:
				sb.WriteString(style.Foreground(top).Render("▀"))
			case bottomOK:
				sb.WriteString(style.Foreground(bottom).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n"), nil
}

package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Debug FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Loaded reports whether the face has been loaded.
func (f FontName) Loaded() bool {
	_, ok := fonts[f]
	return ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the bundled Go Regular face at the HUD and debug sizes.
func LoadDefaults(hudSize, debugSize float64) error {
	if err := LoadFontWithSize(HUD, goregular.TTF, hudSize); err != nil {
		return err
	}
	return LoadFontWithSize(Debug, goregular.TTF, debugSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

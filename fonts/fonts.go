package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Debug FontName = "debug"
	HUD   FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{
		Debug: basicfont.Face7x13,
		HUD:   basicfont.Face7x13,
	}
)

// LoadFace registers a face under name, replacing the built-in bitmap face.
func LoadFace(name FontName, face font.Face) {
	fonts[name] = face
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

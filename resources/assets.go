package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	spriteDir = "sprites/"
	logoDir   = "logo/"
	soundDir  = "sounds/"

	DuckAnimation = "duck.gif"
	PopSound      = "pop.wav"
	ActiveLogo    = "duck.png"
	PausedLogo    = "duck_paused.png"
)

//go:embed sprites/*.gif
var spriteFS embed.FS

//go:embed logo/*.png
var logoFS embed.FS

//go:embed sounds/*.wav
var soundFS embed.FS

var logoCache sync.Map

// Sprite returns the raw bytes of an animation file.
func Sprite(fileName string) ([]byte, error) {
	data, err := spriteFS.ReadFile(spriteDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", fileName, err)
	}
	return data, nil
}

// MustSprite returns sprite bytes or panics on error.
func MustSprite(fileName string) []byte {
	data, err := Sprite(fileName)
	if err != nil {
		panic(err)
	}
	return data
}

// Sound returns the raw bytes of a sound file.
func Sound(fileName string) ([]byte, error) {
	data, err := soundFS.ReadFile(soundDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", fileName, err)
	}
	return data, nil
}

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	return loadResource(logoFS, logoDir+fileName, &logoCache)
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}

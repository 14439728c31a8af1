// internal/defs/types.go
package defs

import "image"

// Region — прямоугольная область спрайта внутри общего листа
type Region struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect переводит область в image.Rectangle для SubImage
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Atlas связывает символьные имена спрайтов с областями листа
type Atlas struct {
	Sheet   string            `yaml:"sheet"`
	Sprites map[string]Region `yaml:"sprites"`
}

// Lookup ищет область по имени спрайта
func (a *Atlas) Lookup(name string) (Region, bool) {
	if a == nil {
		return Region{}, false
	}
	r, ok := a.Sprites[name]
	return r, ok
}

// Regions выбирает области для перечисленных имён, которые целиком лежат
// внутри листа. Отсутствующие в атласе имена пропускаются молча,
// области за границами листа возвращаются в outside.
func (a *Atlas) Regions(sheet image.Rectangle, names ...string) (found map[string]image.Rectangle, outside []string) {
	found = make(map[string]image.Rectangle, len(names))
	for _, name := range names {
		region, ok := a.Lookup(name)
		if !ok {
			continue
		}
		r := region.Rect()
		if !r.In(sheet) {
			outside = append(outside, name)
			continue
		}
		found[name] = r
	}
	return found, outside
}

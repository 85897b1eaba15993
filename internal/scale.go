package internal

import "strconv"

// FontSizeClass maps count onto [MinFontClass, MaxFontClass] by linear
// interpolation between minCount and maxCount. When the bounds coincide every
// count maps to MinFontClass.
func FontSizeClass(count, minCount, maxCount int) int {
	if maxCount <= minCount {
		return MinFontClass
	}
	switch {
	case count <= minCount:
		return MinFontClass
	case count >= maxCount:
		return MaxFontClass
	}
	return fontClassRange*(count-minCount)/(maxCount-minCount) + MinFontClass
}

// FontClassName returns the stylesheet class for a font size class.
func FontClassName(class int) string {
	return "f" + strconv.Itoa(class)
}

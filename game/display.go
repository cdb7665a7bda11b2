package game

import "strings"

const (
	stoolSpacing = "  "
	stoolChar    = "="
	cheeseChar   = "-"
)

// String depicts the current state of the stools and cheese. Stools are scaled
// to the number of cheeses in the game.
func (m *Model) String() string {
	width := 2*m.widest() + 1
	stoolText := strings.Repeat(stoolChar, width)

	var b strings.Builder
	for height := m.numberOfCheeses - 1; height >= 0; height-- {
		for stool := range m.stools {
			size := 0
			if c, ok := m.CheeseAt(stool, height); ok {
				size = c.Size
			}
			b.WriteString(cheeseText(size, width))
			b.WriteString(stoolSpacing)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(stoolText+stoolSpacing, len(m.stools)))

	return b.String()
}

func cheeseText(size, width int) string {
	if size <= 0 {
		return strings.Repeat(" ", width)
	}

	body := strings.Repeat(cheeseChar, 2*size-1)
	filler := strings.Repeat(" ", (width-len(body))/2)

	return filler + body + filler
}

// widest is the cheese count, or the largest size when a bigger cheese was added
func (m *Model) widest() int {
	w := m.numberOfCheeses
	for _, stool := range m.stools {
		if len(stool) > 0 && stool[0].Size > w {
			w = stool[0].Size
		}
	}
	return w
}

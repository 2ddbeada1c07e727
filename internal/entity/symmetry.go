package entity

// Transform maps a cell of the grid onto another cell.
type Transform func(Move) Move

// Transforms are the 8 symmetries of the square: identity, three rotations
// and four reflections. Each one maps lines onto lines.
var Transforms = map[string]Transform{
	"identity":       func(m Move) Move { return m },
	"rotate90":       func(m Move) Move { return Move{Row: m.Col, Col: Size - 1 - m.Row} },
	"rotate180":      func(m Move) Move { return Move{Row: Size - 1 - m.Row, Col: Size - 1 - m.Col} },
	"rotate270":      func(m Move) Move { return Move{Row: Size - 1 - m.Col, Col: m.Row} },
	"flipHorizontal": func(m Move) Move { return Move{Row: m.Row, Col: Size - 1 - m.Col} },
	"flipVertical":   func(m Move) Move { return Move{Row: Size - 1 - m.Row, Col: m.Col} },
	"transpose":      func(m Move) Move { return Move{Row: m.Col, Col: m.Row} },
	"antiTranspose":  func(m Move) Move { return Move{Row: Size - 1 - m.Col, Col: Size - 1 - m.Row} },
}

// Apply returns the board with every cell moved by the transform.
func (that Board) Apply(transform Transform) Board {
	var out Board
	for i, row := range that {
		for j, cell := range row {
			target := transform(Move{Row: i, Col: j})
			out[target.Row][target.Col] = cell
		}
	}

	return out
}

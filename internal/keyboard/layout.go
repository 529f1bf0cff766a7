package keyboard

import "fmt"

// Row identifies one row of a physical keyboard, top to bottom.
type Row int

const (
	NumberRow Row = iota
	TopRow
	MiddleRow
	BottomRow
	SpaceRow

	rowCount
)

var rowNames = [rowCount]string{"number", "top", "middle", "bottom", "space"}

func (r Row) String() string {
	if r < 0 || r >= rowCount {
		return fmt.Sprintf("row(%d)", int(r))
	}
	return rowNames[r]
}

// Rows lists every row in display order.
func Rows() []Row {
	return []Row{NumberRow, TopRow, MiddleRow, BottomRow, SpaceRow}
}

// RowLengths is the number of keys each row of the physical board carries.
var RowLengths = [rowCount]int{14, 14, 13, 12, 10}

// SpaceExtraWidth is how much wider the space bar is than a standard key.
const SpaceExtraWidth = 30

// Layout is a named keyboard arrangement. It is not modified after
// construction.
type Layout struct {
	Name string
	rows [rowCount][]Key
}

// NewLayout builds a layout from rows given in display order. Each row must
// have exactly the length listed in RowLengths.
func NewLayout(name string, rows [][]Key) (Layout, error) {
	if len(rows) != int(rowCount) {
		return Layout{}, fmt.Errorf("layout %q: expected %d rows, got %d", name, rowCount, len(rows))
	}

	l := Layout{Name: name}
	for i, row := range rows {
		if len(row) != RowLengths[i] {
			return Layout{}, fmt.Errorf("layout %q: %s row must have %d keys, got %d",
				name, Row(i), RowLengths[i], len(row))
		}
		l.rows[i] = append([]Key(nil), row...)
	}
	return l, nil
}

// MustLayout is like NewLayout but panics on a malformed table. It is meant
// for literal tables compiled into the program.
func MustLayout(name string, rows [][]Key) Layout {
	l, err := NewLayout(name, rows)
	if err != nil {
		panic(err)
	}
	return l
}

// Row returns a copy of the keys in row r, left to right.
func (l Layout) Row(r Row) []Key {
	if r < 0 || r >= rowCount {
		return nil
	}
	return append([]Key(nil), l.rows[r]...)
}

// Keys returns every key of the layout, row by row.
func (l Layout) Keys() []Key {
	var out []Key
	for _, r := range Rows() {
		out = append(out, l.rows[r]...)
	}
	return out
}

// QWERTY returns the US-style QWERTY layout.
func QWERTY() Layout {
	return MustLayout("QWERTY", [][]Key{
		keys("~", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "BACKSPACE"),
		keys("TAB", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]", `\`),
		keys("CAPS", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", `"`, "ENTER"),
		keys("SHIFT", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "SHIFT"),
		{
			NewKey("CTRL"), NewKey("fn"), NewKey("WIN"), NewKey("ALT"),
			NewWideKey("SPACE", SpaceExtraWidth),
			NewKey("ALT"), NewKey("CTRL"), NewKey("<"), NewKey("^"), NewKey(">"),
		},
	})
}

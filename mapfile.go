package main

import (
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/iotaledger/hive.go/ierrors"
)

var ErrInvalidMapFile = ierrors.New("invalid map file")

// Map file format: one grid row per line.
//
//	.  or 0   free cell
//	#  or 1   blocked cell
//	S         start (free)
//	G         goal (free)
//
// Cells may be separated by spaces, // starts a comment.
type mapFile struct {
	Rows []*mapRow `parser:"EOL* @@*"`
}

type mapRow struct {
	Cells []string `parser:"@Cell+ EOL*"`
}

var mapLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Cell", Pattern: `[.#01SG]`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var mapParser = participle.MustBuild[mapFile](
	participle.Lexer(mapLexer),
	participle.Elide("Comment", "Whitespace"),
)

// MapFile is a parsed map with the optional start and goal markers
type MapFile struct {
	Grid     *GridMap
	Start    Position
	HasStart bool
	Goal     Position
	HasGoal  bool
}

// ParseGridMap parses the ASCII map format
func ParseGridMap(name, text string) (*MapFile, error) {
	parsed, err := mapParser.ParseString(name, text)
	if err != nil {
		return nil, ierrors.Wrapf(ErrInvalidMapFile, "%s: %s", name, err)
	}
	if len(parsed.Rows) == 0 {
		return nil, ierrors.Wrapf(ErrInvalidMapFile, "%s: no rows", name)
	}

	result := &MapFile{}
	cells := make([][]int, len(parsed.Rows))
	for r, row := range parsed.Rows {
		cells[r] = make([]int, len(row.Cells))
		for c, cell := range row.Cells {
			switch cell {
			case "#", "1":
				cells[r][c] = int(Blocked)
			case "S":
				if result.HasStart {
					return nil, ierrors.Wrapf(ErrInvalidMapFile, "%s: second start marker at (%d,%d)", name, r, c)
				}
				result.Start, result.HasStart = Position{Row: r, Col: c}, true
			case "G":
				if result.HasGoal {
					return nil, ierrors.Wrapf(ErrInvalidMapFile, "%s: second goal marker at (%d,%d)", name, r, c)
				}
				result.Goal, result.HasGoal = Position{Row: r, Col: c}, true
			}
		}
	}

	grid, err := NewGridMap(cells)
	if err != nil {
		return nil, ierrors.Wrapf(ErrInvalidMapFile, "%s: %s", name, err)
	}
	result.Grid = grid

	return result, nil
}

// LoadMapFile reads and parses a map file from disk
func LoadMapFile(path string) (*MapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read map file")
	}
	return ParseGridMap(path, string(data))
}

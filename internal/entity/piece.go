package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/jungle-king/internal/apperror"
)

type Color int8

const (
	NoColor Color = iota
	Blue
	Green
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	default:
		return "None"
	}
}

func (c Color) Opponent() Color {
	switch c {
	case Blue:
		return Green
	case Green:
		return Blue
	default:
		return NoColor
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for _, color := range []Color{NoColor, Blue, Green} {
		if strings.EqualFold(color.String(), string(text)) {
			*c = color
			return nil
		}
	}

	return fmt.Errorf("%w: %q", apperror.ErrUnknownColor, text)
}

// Kind is one of the eight animals.
type Kind int8

const (
	NoKind Kind = iota
	Elephant
	Lion
	Tiger
	Leopard
	Wolf
	Dog
	Cat
	Rat
)

type kindTraits struct {
	name     string
	letter   byte
	strength int
	swims    bool
	leaps    bool
}

var traits = map[Kind]kindTraits{
	Elephant: {name: "Elephant", letter: 'E', strength: 8},
	Lion:     {name: "Lion", letter: 'L', strength: 7, leaps: true},
	Tiger:    {name: "Tiger", letter: 'T', strength: 6, leaps: true},
	Leopard:  {name: "Leopard", letter: 'P', strength: 5},
	Wolf:     {name: "Wolf", letter: 'W', strength: 4},
	Dog:      {name: "Dog", letter: 'D', strength: 3},
	Cat:      {name: "Cat", letter: 'C', strength: 2},
	Rat:      {name: "Rat", letter: 'R', strength: 1, swims: true},
}

// Kinds - returns all kinds from strongest to weakest.
func Kinds() []Kind {
	return []Kind{Elephant, Lion, Tiger, Leopard, Wolf, Dog, Cat, Rat}
}

// ParseKind - resolves a kind by its name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if strings.EqualFold(traits[kind].name, strings.TrimSpace(name)) {
			return kind, nil
		}
	}

	return NoKind, fmt.Errorf("%w: %q", apperror.ErrUnknownKind, name)
}

func (k Kind) String() string {
	if t, ok := traits[k]; ok {
		return t.name
	}
	return "Unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - accepts any name ParseKind does, plus the name of NoKind.
func (k *Kind) UnmarshalText(text []byte) error {
	if string(text) == NoKind.String() {
		*k = NoKind
		return nil
	}

	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// Letter is the single-character symbol used by text renderers.
func (k Kind) Letter() byte {
	if t, ok := traits[k]; ok {
		return t.letter
	}
	return '?'
}

func (k Kind) Strength() int {
	return traits[k].strength
}

// Swims reports whether the kind may enter lake tiles.
func (k Kind) Swims() bool {
	return traits[k].swims
}

// Leaps reports whether the kind may jump across a lake.
func (k Kind) Leaps() bool {
	return traits[k].leaps
}

type PieceID int

const NoPiece PieceID = -1

// Piece is an entry of the game's piece arena. Captured pieces keep their last
// position but are detached from the board.
type Piece struct {
	ID       PieceID  `json:"id"`
	Kind     Kind     `json:"kind"`
	Owner    Color    `json:"owner"`
	Position Position `json:"position"`
	Captured bool     `json:"captured"`
}

func (p Piece) Strength() int {
	return p.Kind.Strength()
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Owner, p.Kind)
}
